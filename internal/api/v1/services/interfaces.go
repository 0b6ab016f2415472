package services

import (
	"context"
	"io"

	"file-wrangler/internal/api/v1/dto"
)

// FileService defines the interface for listing and previewing files
type FileService interface {
	ListFiles(ctx context.Context, query dto.ListFilesQuery) (*dto.ListFilesResponse, error)
	PreviewFile(ctx context.Context, query dto.PreviewQuery) (*dto.PreviewResponse, error)
}

// OperationService defines the interface for bulk operations
type OperationService interface {
	PreviewRename(ctx context.Context, req *dto.RenamePreviewRequest) (*dto.RenamePreviewResponse, error)
	Run(ctx context.Context, req *dto.RunOperationRequest) (*dto.ReportResponse, error)
	ListOperations(ctx context.Context, query dto.ListOperationsQuery) (*dto.PaginatedOperationsResponse, error)
	GetOperation(ctx context.Context, id string) (*dto.OperationDetailResponse, error)
}

// ExportService defines the interface for exporting operation history
type ExportService interface {
	ExportOperations(ctx context.Context, req dto.ExportQuery, writer io.Writer) error
}
