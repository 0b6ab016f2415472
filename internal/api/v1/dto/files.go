package dto

import (
	"time"

	"github.com/dustin/go-humanize"

	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/preview"
)

// ListFilesQuery represents query parameters for listing files
type ListFilesQuery struct {
	Root           string `form:"root" binding:"required"`
	Pattern        string `form:"pattern"`
	UseRegex       bool   `form:"use_regex"`
	CaseSensitive  bool   `form:"case_sensitive"`
	IncludeSubdirs bool   `form:"include_subdirs"`
	Type           string `form:"type,default=all" binding:"omitempty,oneof=all file dir"`
	SortBy         string `form:"sort_by,default=name" binding:"omitempty,oneof=name size modified path"`
	Descending     bool   `form:"descending"`
	Page           int    `form:"page,default=1" binding:"min=1"`
	Limit          int    `form:"limit,default=100" binding:"min=1,max=1000"`
}

// FileEntryResponse represents a file entry in API responses
type FileEntryResponse struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	SizeHuman string    `json:"size_human"`
	ModTime   time.Time `json:"mod_time"`
	IsDir     bool      `json:"is_dir"`
}

// ListFilesResponse represents a paginated directory listing
type ListFilesResponse struct {
	Root       string              `json:"root"`
	Entries    []FileEntryResponse `json:"entries"`
	Pagination PaginationResponse  `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// PreviewQuery represents query parameters for previewing a file
type PreviewQuery struct {
	Path     string `form:"path" binding:"required"`
	MaxBytes int64  `form:"max_bytes" binding:"omitempty,min=1,max=1048576"`
}

// PreviewResponse represents a capped file preview
type PreviewResponse struct {
	Path      string `json:"path"`
	Content   string `json:"content"`
	Size      int64  `json:"size"`
	Encoding  string `json:"encoding"`
	IsBinary  bool   `json:"is_binary"`
	Truncated bool   `json:"truncated"`
}

// ToFileEntryResponse converts a model entry to a response DTO
func ToFileEntryResponse(e model.FileEntry) FileEntryResponse {
	return FileEntryResponse{
		Name:      e.Name,
		Path:      e.FullPath,
		Size:      e.Size,
		SizeHuman: humanize.IBytes(uint64(e.Size)),
		ModTime:   e.ModTime,
		IsDir:     e.IsDir,
	}
}

// ToPreviewResponse converts file content to a response DTO
func ToPreviewResponse(fc *preview.FileContent) PreviewResponse {
	return PreviewResponse{
		Path:      fc.Path,
		Content:   fc.Content,
		Size:      fc.Size,
		Encoding:  fc.Encoding,
		IsBinary:  fc.IsBinary,
		Truncated: fc.Truncated,
	}
}
