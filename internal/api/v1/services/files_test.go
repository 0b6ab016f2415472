package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-wrangler/internal/api/v1/dto"
	apperrors "file-wrangler/internal/app/errors"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileServiceListsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "alpha.txt", "one")
	writeTestFile(t, dir, "beta.log", "two")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	svc := NewFileService(0)

	resp, err := svc.ListFiles(context.Background(), dto.ListFilesQuery{Root: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Pagination.Total)
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "alpha.txt", resp.Entries[0].Name)
	assert.Equal(t, "3 B", resp.Entries[0].SizeHuman)
	assert.True(t, resp.Entries[2].IsDir)
}

func TestFileServiceFiltersByPattern(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "report_2024.txt", "a")
	writeTestFile(t, dir, "Report_2025.txt", "b")
	writeTestFile(t, dir, "invoice.txt", "c")

	svc := NewFileService(0)

	resp, err := svc.ListFiles(context.Background(), dto.ListFilesQuery{
		Root:    dir,
		Pattern: "report",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 2)

	resp, err = svc.ListFiles(context.Background(), dto.ListFilesQuery{
		Root:          dir,
		Pattern:       "report",
		CaseSensitive: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "report_2024.txt", resp.Entries[0].Name)
}

func TestFileServicePaginates(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "1")
	writeTestFile(t, dir, "b.txt", "2")
	writeTestFile(t, dir, "c.txt", "3")

	svc := NewFileService(0)

	resp, err := svc.ListFiles(context.Background(), dto.ListFilesQuery{
		Root:  dir,
		Page:  2,
		Limit: 2,
	})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "c.txt", resp.Entries[0].Name)
	assert.Equal(t, 3, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.False(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestFileServicePageBeyondEnd(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "1")

	svc := NewFileService(0)

	resp, err := svc.ListFiles(context.Background(), dto.ListFilesQuery{
		Root:  dir,
		Page:  9,
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 0)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestFileServiceMissingRoot(t *testing.T) {
	svc := NewFileService(0)

	_, err := svc.ListFiles(context.Background(), dto.ListFilesQuery{
		Root: filepath.Join(t.TempDir(), "missing"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindPathNotFound, apperrors.KindOf(err))
}

func TestFileServiceInvalidPattern(t *testing.T) {
	svc := NewFileService(0)

	_, err := svc.ListFiles(context.Background(), dto.ListFilesQuery{
		Root:     t.TempDir(),
		Pattern:  "[unclosed",
		UseRegex: true,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidPattern, apperrors.KindOf(err))
}

func TestFileServicePreview(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.txt", "hello preview")

	svc := NewFileService(0)

	resp, err := svc.PreviewFile(context.Background(), dto.PreviewQuery{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "hello preview", resp.Content)
	assert.Equal(t, "utf-8", resp.Encoding)
	assert.False(t, resp.Truncated)
}

func TestFileServicePreviewHonorsCap(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "big.txt", "0123456789")

	svc := NewFileService(4)

	resp, err := svc.PreviewFile(context.Background(), dto.PreviewQuery{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "0123", resp.Content)
	assert.True(t, resp.Truncated)
	assert.Equal(t, int64(10), resp.Size)

	// A per-request cap overrides the service default.
	resp, err = svc.PreviewFile(context.Background(), dto.PreviewQuery{Path: path, MaxBytes: 6})
	require.NoError(t, err)
	assert.Equal(t, "012345", resp.Content)
}

func TestFileServicePreviewMissingFile(t *testing.T) {
	svc := NewFileService(0)

	_, err := svc.PreviewFile(context.Background(), dto.PreviewQuery{
		Path: filepath.Join(t.TempDir(), "ghost.txt"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindPathNotFound, apperrors.KindOf(err))
}
