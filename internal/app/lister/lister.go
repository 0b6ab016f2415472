package lister

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
)

// List scans the root directory and returns a snapshot of its entries.
// Each call is a fresh full scan; there are no watch or incremental
// semantics. Entries that disappear between the scan and their stat are
// skipped rather than failing the listing.
func List(opts model.ListOptions) ([]model.FileEntry, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, apperrors.Wrapf(err, "resolve root %q", opts.Root)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, apperrors.Wrapf(err, "stat %q", root)
	}
	if !info.IsDir() {
		return nil, apperrors.ErrNotDirectory
	}

	var entries []model.FileEntry
	if opts.IncludeSubdirs {
		entries, err = walk(root)
	} else {
		entries, err = readDir(root)
	}
	if err != nil {
		return nil, err
	}

	sortEntries(entries, opts.SortBy, opts.Descending)
	return entries, nil
}

func readDir(root string) ([]model.FileEntry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, apperrors.Wrapf(err, "read directory %q", root)
	}

	entries := make([]model.FileEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, toEntry(filepath.Join(root, de.Name()), info))
	}
	return entries, nil
}

func walk(root string) ([]model.FileEntry, error) {
	var entries []model.FileEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// Unreadable subtrees degrade to a partial listing.
			return nil
		}
		if path == root {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		entries = append(entries, toEntry(path, info))
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrapf(err, "walk directory %q", root)
	}
	return entries, nil
}

func toEntry(path string, info fs.FileInfo) model.FileEntry {
	return model.FileEntry{
		Name:     info.Name(),
		FullPath: path,
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		IsDir:    info.IsDir(),
	}
}

func sortEntries(entries []model.FileEntry, key model.SortKey, descending bool) {
	var less func(i, j int) bool

	switch key {
	case model.SortBySize:
		less = func(i, j int) bool { return entries[i].Size < entries[j].Size }
	case model.SortByModified:
		less = func(i, j int) bool { return entries[i].ModTime.Before(entries[j].ModTime) }
	case model.SortByPath:
		less = func(i, j int) bool { return entries[i].FullPath < entries[j].FullPath }
	default:
		less = func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		}
	}

	if descending {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(entries, less)
}
