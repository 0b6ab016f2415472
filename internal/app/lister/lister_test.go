package lister

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func names(entries []model.FileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestListFlat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "bb")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "sub", "nested.txt"), "deep")

	entries, err := List(model.ListOptions{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, names(entries))

	for _, e := range entries {
		if e.Name == "sub" {
			assert.True(t, e.IsDir)
		} else {
			assert.False(t, e.IsDir)
		}
		assert.True(t, filepath.IsAbs(e.FullPath))

		// Flat listings never reach below the root.
		rel, err := filepath.Rel(dir, e.FullPath)
		require.NoError(t, err)
		assert.NotContains(t, rel, string(filepath.Separator))
	}
}

func TestListRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "top.txt"), "x")
	writeFile(t, filepath.Join(dir, "sub", "nested.txt"), "y")

	entries, err := List(model.ListOptions{Root: dir, IncludeSubdirs: true})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"top.txt", "sub", "nested.txt"}, names(entries))
}

func TestListMissingRoot(t *testing.T) {
	_, err := List(model.ListOptions{Root: filepath.Join(t.TempDir(), "gone")})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindPathNotFound, apperrors.KindOf(err))
}

func TestListRootIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	writeFile(t, file, "not a dir")

	_, err := List(model.ListOptions{Root: file})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindPathNotFound, apperrors.KindOf(err))
}

func TestListSorting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "small.txt"), "1")
	writeFile(t, filepath.Join(dir, "large.txt"), strings.Repeat("x", 100))
	writeFile(t, filepath.Join(dir, "medium.txt"), strings.Repeat("x", 10))

	oldest := time.Now().Add(-2 * time.Hour)
	older := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "large.txt"), oldest, oldest))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "medium.txt"), older, older))

	tests := []struct {
		name string
		opts model.ListOptions
		want []string
	}{
		{
			name: "by size ascending",
			opts: model.ListOptions{Root: dir, SortBy: model.SortBySize},
			want: []string{"small.txt", "medium.txt", "large.txt"},
		},
		{
			name: "by size descending",
			opts: model.ListOptions{Root: dir, SortBy: model.SortBySize, Descending: true},
			want: []string{"large.txt", "medium.txt", "small.txt"},
		},
		{
			name: "by modified time",
			opts: model.ListOptions{Root: dir, SortBy: model.SortByModified},
			want: []string{"large.txt", "medium.txt", "small.txt"},
		},
		{
			name: "by name default",
			opts: model.ListOptions{Root: dir},
			want: []string{"large.txt", "medium.txt", "small.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := List(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(entries))
		})
	}
}
