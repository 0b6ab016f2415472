package bulk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
)

// CopyOptions controls what happens when a copy target already exists.
// With neither flag set the item fails and nothing is written. When both
// are set, RenameDuplicates wins.
type CopyOptions struct {
	Overwrite        bool
	RenameDuplicates bool
}

// Copy duplicates every selected entry into destDir. Files are written
// through a temporary file and promoted with a rename, so a failing copy
// never leaves a partial target behind. Directories are copied recursively.
func (e *Executor) Copy(ctx context.Context, root string, selection []model.FileEntry, destDir string, opts CopyOptions) (*model.Report, error) {
	if len(selection) == 0 {
		return nil, apperrors.ErrEmptySelection
	}
	if destDir == "" {
		return nil, apperrors.ErrNoDestination
	}

	destAbs, err := filepath.Abs(destDir)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to resolve destination %s", destDir)
	}
	info, err := os.Stat(destAbs)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to stat destination %s", destAbs)
	}
	if !info.IsDir() {
		return nil, apperrors.Wrapf(apperrors.ErrNotDirectory, "destination %s", destAbs)
	}

	report := e.begin(model.OpCopy, root, destAbs)
	for _, entry := range selection {
		if ctx.Err() != nil {
			e.record(report, skippedItem(entry.FullPath, "", "operation cancelled"))
			continue
		}
		e.record(report, copyOne(entry, destAbs, opts))
	}
	return e.finish(report), nil
}

func copyOne(entry model.FileEntry, destDir string, opts CopyOptions) model.ItemResult {
	info, err := os.Lstat(entry.FullPath)
	if err != nil {
		return failedItem(entry.FullPath, "", err)
	}

	sep := string(filepath.Separator)
	if info.IsDir() && strings.HasPrefix(destDir+sep, entry.FullPath+sep) {
		return failedItem(entry.FullPath, destDir,
			apperrors.New("destination is inside the source directory"))
	}

	target := filepath.Join(destDir, entry.Name)
	if _, err := os.Lstat(target); err == nil {
		switch {
		case opts.RenameDuplicates:
			target = uniqueName(target)
		case opts.Overwrite:
			// temp-and-rename below replaces the target in one step
		default:
			return failedItem(entry.FullPath, target,
				apperrors.NewKind(apperrors.KindDestinationExists, "destination already exists"))
		}
	}

	if info.IsDir() {
		err = copyDir(entry.FullPath, target)
	} else {
		err = copyFile(entry.FullPath, target, info)
	}
	if err != nil {
		return failedItem(entry.FullPath, target, err)
	}
	return okItem(entry.FullPath, target)
}

// copyFile writes src to a temporary file next to dst and renames it into
// place, preserving the source's permission bits and modification time.
func copyFile(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".fw-copy-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return err
	}

	// Timestamp preservation is best effort.
	_ = os.Chtimes(dst, time.Now(), info.ModTime())
	return nil
}

func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		if err := copyFile(srcPath, dstPath, info); err != nil {
			return err
		}
	}
	return nil
}

// uniqueName appends _1, _2, ... before the extension until the name is
// free in the target directory.
func uniqueName(target string) string {
	dir := filepath.Dir(target)
	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(filepath.Base(target), ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Lstat(candidate); err != nil {
			return candidate
		}
	}
}
