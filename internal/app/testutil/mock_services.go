// Package testutil provides shared test doubles for the API service
// interfaces.
package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"file-wrangler/internal/api/v1/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	FileService      *MockFileService
	OperationService *MockOperationService
	ExportService    *MockExportService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		FileService:      NewMockFileService(t),
		OperationService: NewMockOperationService(t),
		ExportService:    NewMockExportService(t),
	}
}

// MockFileService is a mock implementation of FileService
type MockFileService struct {
	mock.Mock
}

func NewMockFileService(t *testing.T) *MockFileService {
	m := &MockFileService{}
	m.Test(t)
	return m
}

func (m *MockFileService) ListFiles(ctx context.Context, query dto.ListFilesQuery) (*dto.ListFilesResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListFilesResponse), args.Error(1)
}

func (m *MockFileService) PreviewFile(ctx context.Context, query dto.PreviewQuery) (*dto.PreviewResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PreviewResponse), args.Error(1)
}

// MockOperationService is a mock implementation of OperationService
type MockOperationService struct {
	mock.Mock
}

func NewMockOperationService(t *testing.T) *MockOperationService {
	m := &MockOperationService{}
	m.Test(t)
	return m
}

func (m *MockOperationService) PreviewRename(ctx context.Context, req *dto.RenamePreviewRequest) (*dto.RenamePreviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RenamePreviewResponse), args.Error(1)
}

func (m *MockOperationService) Run(ctx context.Context, req *dto.RunOperationRequest) (*dto.ReportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResponse), args.Error(1)
}

func (m *MockOperationService) ListOperations(ctx context.Context, query dto.ListOperationsQuery) (*dto.PaginatedOperationsResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedOperationsResponse), args.Error(1)
}

func (m *MockOperationService) GetOperation(ctx context.Context, id string) (*dto.OperationDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OperationDetailResponse), args.Error(1)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func NewMockExportService(t *testing.T) *MockExportService {
	m := &MockExportService{}
	m.Test(t)
	return m
}

func (m *MockExportService) ExportOperations(ctx context.Context, req dto.ExportQuery, writer io.Writer) error {
	args := m.Called(ctx, req, writer)
	return args.Error(0)
}
