package bulk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
)

func TestCopyFilesToDestination(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := writeFile(t, src, "a.txt", "alpha")
	require.NoError(t, os.Chmod(a.FullPath, 0o600))
	b := writeFile(t, src, "b.txt", "beta")

	report, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{entryFor(t, a.FullPath), b}, dst, CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, dst, report.Destination)

	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	info, err := os.Stat(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Sources are untouched.
	assert.FileExists(t, a.FullPath)
	assert.FileExists(t, b.FullPath)
}

func TestCopyDestinationExistsFailsCleanly(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := writeFile(t, src, "a.txt", "new content")
	writeFile(t, dst, "a.txt", "old content")

	report, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{a}, dst, CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, string(apperrors.KindDestinationExists), report.Items[0].ErrorKind)

	// Neither side is touched and no partial artifact is left behind.
	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old content", string(data))

	data, err = os.ReadFile(a.FullPath)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))

	leftovers, err := filepath.Glob(filepath.Join(dst, ".fw-copy-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestCopyOverwrite(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := writeFile(t, src, "a.txt", "new content")
	writeFile(t, dst, "a.txt", "old content")

	report, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{a}, dst, CopyOptions{Overwrite: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)

	data, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))
}

func TestCopyRenameDuplicates(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := writeFile(t, src, "a.txt", "new content")
	writeFile(t, dst, "a.txt", "old content")
	writeFile(t, dst, "a_1.txt", "first duplicate")

	report, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{a}, dst, CopyOptions{RenameDuplicates: true})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, filepath.Join(dst, "a_2.txt"), report.Items[0].Target)

	data, err := os.ReadFile(filepath.Join(dst, "a_2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old content", string(data))
}

func TestCopyDirectoryRecursive(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	tree := filepath.Join(src, "project")
	require.NoError(t, os.MkdirAll(filepath.Join(tree, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tree, "main.txt"), []byte("m"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tree, "docs", "readme.txt"), []byte("r"), 0o644))

	report, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{entryFor(t, tree)}, dst, CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.FileExists(t, filepath.Join(dst, "project", "main.txt"))
	assert.FileExists(t, filepath.Join(dst, "project", "docs", "readme.txt"))
}

func TestCopyDestinationInsideSource(t *testing.T) {
	src := t.TempDir()
	tree := filepath.Join(src, "project")
	inner := filepath.Join(tree, "backup")
	require.NoError(t, os.MkdirAll(inner, 0o755))

	report, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{entryFor(t, tree)}, inner, CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Items[0].Message, "inside the source")
}

func TestCopyMissingDestination(t *testing.T) {
	src := t.TempDir()
	a := writeFile(t, src, "a.txt", "a")

	_, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{a}, filepath.Join(src, "no-such-dir"), CopyOptions{})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindPathNotFound, apperrors.KindOf(err))
}

func TestCopyDestinationIsFile(t *testing.T) {
	src := t.TempDir()
	a := writeFile(t, src, "a.txt", "a")
	blocker := writeFile(t, src, "blocker.txt", "b")

	_, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{a}, blocker.FullPath, CopyOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotDirectory)
}

func TestCopyMissingSource(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	a := writeFile(t, src, "a.txt", "a")
	require.NoError(t, os.Remove(a.FullPath))

	report, err := NewExecutor(nil).Copy(context.Background(), src,
		[]model.FileEntry{a}, dst, CopyOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, string(apperrors.KindPathNotFound), report.Items[0].ErrorKind)
}

func TestUniqueName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")

	assert.Equal(t, filepath.Join(dir, "a_1.txt"), uniqueName(filepath.Join(dir, "a.txt")))

	writeFile(t, dir, "a_1.txt", "x")
	assert.Equal(t, filepath.Join(dir, "a_2.txt"), uniqueName(filepath.Join(dir, "a.txt")))

	// Names without an extension get the suffix at the end.
	writeFile(t, dir, "Makefile", "x")
	assert.Equal(t, filepath.Join(dir, "Makefile_1"), uniqueName(filepath.Join(dir, "Makefile")))
}
