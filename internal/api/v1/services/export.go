package services

import (
	"context"
	"io"

	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/app/export"
)

// ExportServiceImpl implements the ExportService interface
type ExportServiceImpl struct {
	exporter *export.Service
}

// NewExportService creates a new export service
func NewExportService(exporter *export.Service) ExportService {
	return &ExportServiceImpl{
		exporter: exporter,
	}
}

// ExportOperations exports operation history in the requested format
func (s *ExportServiceImpl) ExportOperations(ctx context.Context, req dto.ExportQuery, writer io.Writer) error {
	return s.exporter.Export(ctx, export.Request{
		Format: export.Format(req.Format),
		Kind:   req.Kind,
		Limit:  req.Limit,
	}, writer)
}
