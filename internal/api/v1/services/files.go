package services

import (
	"context"

	"github.com/samber/lo"

	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/app/filter"
	"file-wrangler/internal/app/lister"
	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/preview"
	"file-wrangler/internal/metrics"
)

// FileServiceImpl implements FileService
type FileServiceImpl struct {
	previewMaxBytes int64
}

// NewFileService creates a new file service. previewMaxBytes caps previews
// when the request does not set its own limit.
func NewFileService(previewMaxBytes int64) FileService {
	if previewMaxBytes <= 0 {
		previewMaxBytes = preview.DefaultMaxBytes
	}
	return &FileServiceImpl{
		previewMaxBytes: previewMaxBytes,
	}
}

// ListFiles lists a directory with filtering, sorting and pagination
func (s *FileServiceImpl) ListFiles(ctx context.Context, query dto.ListFilesQuery) (*dto.ListFilesResponse, error) {
	entries, err := lister.List(model.ListOptions{
		Root:           query.Root,
		IncludeSubdirs: query.IncludeSubdirs,
		SortBy:         model.SortKey(query.SortBy),
		Descending:     query.Descending,
	})
	if err != nil {
		metrics.RecordListing(false)
		return nil, err
	}

	filtered, err := filter.Apply(entries, model.FilterSpec{
		Pattern:       query.Pattern,
		UseRegex:      query.UseRegex,
		CaseSensitive: query.CaseSensitive,
		Type:          model.EntryType(query.Type),
	})
	if err != nil {
		metrics.RecordListing(false)
		return nil, err
	}

	page, limit := query.Page, query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 100
	}

	// Apply pagination
	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	if start >= total {
		start = total
		end = total
	}
	paginated := filtered[start:end]

	responses := lo.Map(paginated, func(e model.FileEntry, _ int) dto.FileEntryResponse {
		return dto.ToFileEntryResponse(e)
	})

	totalPages := (total + limit - 1) / limit
	metrics.RecordListing(true)

	return &dto.ListFilesResponse{
		Root:    query.Root,
		Entries: responses,
		Pagination: dto.PaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// PreviewFile returns a capped preview of one file
func (s *FileServiceImpl) PreviewFile(ctx context.Context, query dto.PreviewQuery) (*dto.PreviewResponse, error) {
	maxBytes := query.MaxBytes
	if maxBytes <= 0 {
		maxBytes = s.previewMaxBytes
	}

	content, err := preview.Read(query.Path, maxBytes)
	if err != nil {
		metrics.RecordPreview(false)
		return nil, err
	}

	metrics.RecordPreview(true)
	resp := dto.ToPreviewResponse(content)
	return &resp, nil
}
