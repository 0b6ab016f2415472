package model

import "time"

// FileEntry is one filesystem item captured at listing time. A listing is an
// immutable snapshot; entries go stale if the filesystem changes afterwards
// and FullPath only identifies an entry within its own snapshot.
type FileEntry struct {
	Name     string    `json:"name"`
	FullPath string    `json:"full_path"`
	Size     int64     `json:"size"`
	ModTime  time.Time `json:"mod_time"`
	IsDir    bool      `json:"is_dir"`
}

// EntryType narrows a listing to files, directories, or both.
type EntryType string

const (
	TypeAll  EntryType = "all"
	TypeFile EntryType = "file"
	TypeDir  EntryType = "dir"
)

// SortKey selects the listing sort column.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortBySize     SortKey = "size"
	SortByModified SortKey = "modified"
	SortByPath     SortKey = "path"
)

// ListOptions controls a single directory scan.
type ListOptions struct {
	Root           string
	IncludeSubdirs bool
	SortBy         SortKey
	Descending     bool
}

// FilterSpec is a stateless predicate over entry names.
type FilterSpec struct {
	Pattern       string
	UseRegex      bool
	CaseSensitive bool
	Type          EntryType
}

// RenameSpec produces a pure mapping from old name to new name.
type RenameSpec struct {
	Find     string
	Replace  string
	UseRegex bool
}
