package services

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/lo"

	apierrors "file-wrangler/internal/api/errors"
	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/app/bulk"
	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/rename"
	"file-wrangler/internal/app/repository"
)

// StoreProvider lazily opens the archive object store. Construction dials the
// storage endpoint, so it only happens when an archive operation runs.
type StoreProvider func(ctx context.Context) (bulk.ObjectStore, error)

// OperationServiceImpl implements OperationService
type OperationServiceImpl struct {
	executor *bulk.Executor
	history  repository.OperationDAO
	store    StoreProvider

	// One bulk operation at a time; concurrent requests get a busy error
	// instead of queueing up behind filesystem mutations.
	mu sync.Mutex
}

// NewOperationService creates a new operation service
func NewOperationService(executor *bulk.Executor, history repository.OperationDAO, store StoreProvider) OperationService {
	return &OperationServiceImpl{
		executor: executor,
		history:  history,
		store:    store,
	}
}

// PreviewRename computes the rename plan for a selection without touching
// the filesystem
func (s *OperationServiceImpl) PreviewRename(ctx context.Context, req *dto.RenamePreviewRequest) (*dto.RenamePreviewResponse, error) {
	plan, err := rename.BuildPlan(selectionFromPaths(req.Paths), model.RenameSpec{
		Find:     req.Find,
		Replace:  req.Replace,
		UseRegex: req.UseRegex,
	})
	if err != nil {
		return nil, err
	}
	return dto.ToRenamePreviewResponse(plan), nil
}

// Run executes one bulk operation and returns its report
func (s *OperationServiceImpl) Run(ctx context.Context, req *dto.RunOperationRequest) (*dto.ReportResponse, error) {
	if needsConfirmation(req) && !req.Confirm {
		return nil, apperrors.ErrNotConfirmed
	}

	if !s.mu.TryLock() {
		return nil, apperrors.ErrBusy
	}
	defer s.mu.Unlock()

	selection := selectionFromPaths(req.Paths)

	var (
		report *model.Report
		err    error
	)

	switch model.OperationKind(req.Kind) {
	case model.OpDelete:
		report, err = s.executor.Delete(ctx, req.Root, selection)
	case model.OpRename:
		var plan *rename.Plan
		plan, err = rename.BuildPlan(selection, model.RenameSpec{
			Find:     req.Find,
			Replace:  req.Replace,
			UseRegex: req.UseRegex,
		})
		if err == nil {
			report, err = s.executor.Rename(ctx, req.Root, plan)
		}
	case model.OpCopy:
		report, err = s.executor.Copy(ctx, req.Root, selection, req.Destination, bulk.CopyOptions{
			Overwrite:        req.Overwrite,
			RenameDuplicates: req.RenameDuplicates,
		})
	case model.OpArchive:
		var store bulk.ObjectStore
		store, err = s.openStore(ctx)
		if err == nil {
			report, err = s.executor.Archive(ctx, req.Root, store, selection)
		}
	default:
		return nil, apierrors.NewBadRequestError("Unknown operation kind: " + req.Kind)
	}

	if err != nil {
		return nil, err
	}
	return dto.ToReportResponse(report), nil
}

// ListOperations returns the recorded operation history, newest first
func (s *OperationServiceImpl) ListOperations(ctx context.Context, query dto.ListOperationsQuery) (*dto.PaginatedOperationsResponse, error) {
	page, limit := query.Page, query.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	total, err := s.history.Count(query.Kind)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to count operations")
	}

	operations, err := s.history.GetRecent(limit, (page-1)*limit, query.Kind)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to list operations")
	}

	responses := lo.Map(operations, func(op repository.Operation, _ int) dto.OperationResponse {
		return dto.ToOperationResponse(op)
	})

	totalPages := (total + limit - 1) / limit

	return &dto.PaginatedOperationsResponse{
		Operations: responses,
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

// GetOperation returns one recorded operation with its item outcomes
func (s *OperationServiceImpl) GetOperation(ctx context.Context, id string) (*dto.OperationDetailResponse, error) {
	op, items, err := s.history.GetByID(id)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to retrieve operation")
	}
	if op == nil {
		return nil, apierrors.NewNotFoundError("operation")
	}

	resp := &dto.OperationDetailResponse{
		OperationResponse: dto.ToOperationResponse(*op),
		Items:             make([]dto.ItemResultResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.ItemResultResponse{
			Path:      item.Path,
			Target:    item.Target,
			Status:    item.Status,
			ErrorKind: item.ErrorKind,
			Message:   item.Message,
		})
	}
	return resp, nil
}

func (s *OperationServiceImpl) openStore(ctx context.Context) (bulk.ObjectStore, error) {
	if s.store == nil {
		return nil, apperrors.NewKind(apperrors.KindStorage, "archive storage is not configured")
	}
	return s.store(ctx)
}

// needsConfirmation reports whether the request mutates files in a way that
// cannot be undone. Plain copies and archive uploads never destroy anything.
func needsConfirmation(req *dto.RunOperationRequest) bool {
	switch model.OperationKind(req.Kind) {
	case model.OpDelete, model.OpRename:
		return true
	case model.OpCopy:
		return req.Overwrite
	default:
		return false
	}
}

// selectionFromPaths rebuilds entries from raw paths. Paths that no longer
// exist stay in the selection so per-item results report them instead of the
// whole batch failing.
func selectionFromPaths(paths []string) []model.FileEntry {
	selection := make([]model.FileEntry, 0, len(paths))
	for _, p := range paths {
		entry := model.FileEntry{
			Name:     filepath.Base(p),
			FullPath: p,
		}
		if info, err := os.Lstat(p); err == nil {
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
			entry.IsDir = info.IsDir()
		}
		selection = append(selection, entry)
	}
	return selection
}
