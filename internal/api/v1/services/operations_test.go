package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "file-wrangler/internal/api/errors"
	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/app/bulk"
	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/repository"
)

// memoryDAO is an in-memory OperationDAO for service tests.
type memoryDAO struct {
	reports    []*model.Report
	operations []repository.Operation
	items      map[string][]repository.OperationItem
}

func (m *memoryDAO) Close() error { return nil }

func (m *memoryDAO) RecordReport(report *model.Report) error {
	m.reports = append(m.reports, report)
	return nil
}

func (m *memoryDAO) GetRecent(limit, offset int, kind string) ([]repository.Operation, error) {
	out := make([]repository.Operation, 0)
	for _, op := range m.operations {
		if kind != "" && op.Kind != kind {
			continue
		}
		out = append(out, op)
	}
	if offset > len(out) {
		offset = len(out)
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (m *memoryDAO) GetByID(id string) (*repository.Operation, []repository.OperationItem, error) {
	for _, op := range m.operations {
		if op.ID == id {
			found := op
			return &found, m.items[id], nil
		}
	}
	return nil, nil, nil
}

func (m *memoryDAO) Count(kind string) (int, error) {
	n := 0
	for _, op := range m.operations {
		if kind == "" || op.Kind == kind {
			n++
		}
	}
	return n, nil
}

func newTestOperationService(t *testing.T) (OperationService, *memoryDAO) {
	t.Helper()
	dao := &memoryDAO{items: make(map[string][]repository.OperationItem)}
	return NewOperationService(bulk.NewExecutor(dao), dao, nil), dao
}

func TestOperationServiceRunDelete(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "one")
	b := writeTestFile(t, dir, "b.txt", "two")

	svc, dao := newTestOperationService(t)

	resp, err := svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:    "delete",
		Root:    dir,
		Paths:   []string{a, b},
		Confirm: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 0, resp.Failed)
	assert.NotEmpty(t, resp.ID)

	_, err = os.Stat(a)
	assert.True(t, os.IsNotExist(err))

	require.Len(t, dao.reports, 1)
	assert.Equal(t, model.OpDelete, dao.reports[0].Kind)
}

func TestOperationServiceDeleteReportsMissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "one")
	ghost := filepath.Join(dir, "ghost.txt")

	svc, _ := newTestOperationService(t)

	resp, err := svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:    "delete",
		Root:    dir,
		Paths:   []string{a, ghost},
		Confirm: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, "failed", resp.Items[1].Status)
	assert.Equal(t, string(apperrors.KindPathNotFound), resp.Items[1].ErrorKind)
}

func TestOperationServiceRequiresConfirmation(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "one")

	svc, _ := newTestOperationService(t)

	_, err := svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:  "delete",
		Root:  dir,
		Paths: []string{a},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)

	_, err = svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:        "copy",
		Root:        dir,
		Paths:       []string{a},
		Destination: t.TempDir(),
		Overwrite:   true,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)

	// The file is untouched by the refused operations.
	_, err = os.Stat(a)
	assert.NoError(t, err)
}

func TestOperationServicePlainCopyNeedsNoConfirmation(t *testing.T) {
	dir := t.TempDir()
	dest := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "payload")

	svc, _ := newTestOperationService(t)

	resp, err := svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:        "copy",
		Root:        dir,
		Paths:       []string{a},
		Destination: dest,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Succeeded)

	copied, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(copied))
}

func TestOperationServiceRunRename(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "draft_a.txt", "one")
	b := writeTestFile(t, dir, "draft_b.txt", "two")

	svc, _ := newTestOperationService(t)

	resp, err := svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:    "rename",
		Root:    dir,
		Paths:   []string{a, b},
		Find:    "draft",
		Replace: "final",
		Confirm: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Succeeded)

	_, err = os.Stat(filepath.Join(dir, "final_a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "final_b.txt"))
	assert.NoError(t, err)
}

func TestOperationServiceRejectsConcurrentRuns(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "one")

	dao := &memoryDAO{items: make(map[string][]repository.OperationItem)}
	entered := make(chan struct{})
	release := make(chan struct{})
	store := func(ctx context.Context) (bulk.ObjectStore, error) {
		close(entered)
		<-release
		return nil, apperrors.NewKind(apperrors.KindStorage, "store unavailable")
	}
	svc := NewOperationService(bulk.NewExecutor(dao), dao, store)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background(), &dto.RunOperationRequest{
			Kind:  "archive",
			Root:  dir,
			Paths: []string{a},
		})
		done <- err
	}()

	<-entered

	_, err := svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:    "delete",
		Root:    dir,
		Paths:   []string{a},
		Confirm: true,
	})
	assert.ErrorIs(t, err, apperrors.ErrBusy)

	close(release)
	err = <-done
	require.Error(t, err)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}

func TestOperationServiceArchiveWithoutStore(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.txt", "one")

	svc, _ := newTestOperationService(t)

	_, err := svc.Run(context.Background(), &dto.RunOperationRequest{
		Kind:  "archive",
		Root:  dir,
		Paths: []string{a},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}

func TestOperationServicePreviewRename(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.jpg", "x")
	b := writeTestFile(t, dir, "b.jpg", "y")

	svc, _ := newTestOperationService(t)

	resp, err := svc.PreviewRename(context.Background(), &dto.RenamePreviewRequest{
		Root:     dir,
		Paths:    []string{a, b},
		Find:     "a|b",
		Replace:  "x",
		UseRegex: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Summary.Conflicts)
	assert.Equal(t, 0, resp.Summary.OK)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "x.jpg", resp.Items[0].NewName)

	// Previewing never touches the filesystem.
	_, err = os.Stat(a)
	assert.NoError(t, err)
}

func TestOperationServicePreviewRenameInvalidPattern(t *testing.T) {
	svc, _ := newTestOperationService(t)

	_, err := svc.PreviewRename(context.Background(), &dto.RenamePreviewRequest{
		Root:     t.TempDir(),
		Paths:    []string{"/tmp/a.txt"},
		Find:     "[unclosed",
		UseRegex: true,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidPattern, apperrors.KindOf(err))
}

func TestOperationServiceListOperations(t *testing.T) {
	now := time.Now().UTC()
	dao := &memoryDAO{
		operations: []repository.Operation{
			{ID: "op-3", Kind: "delete", Total: 1, StartedAt: now},
			{ID: "op-2", Kind: "rename", Total: 2, StartedAt: now.Add(-time.Hour)},
			{ID: "op-1", Kind: "delete", Total: 3, StartedAt: now.Add(-2 * time.Hour)},
		},
		items: make(map[string][]repository.OperationItem),
	}
	svc := NewOperationService(bulk.NewExecutor(dao), dao, nil)

	resp, err := svc.ListOperations(context.Background(), dto.ListOperationsQuery{})
	require.NoError(t, err)
	assert.Len(t, resp.Operations, 3)
	assert.Equal(t, 3, resp.Pagination.Total)

	resp, err = svc.ListOperations(context.Background(), dto.ListOperationsQuery{Kind: "delete"})
	require.NoError(t, err)
	assert.Len(t, resp.Operations, 2)
	assert.Equal(t, 2, resp.Pagination.Total)

	resp, err = svc.ListOperations(context.Background(), dto.ListOperationsQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, resp.Operations, 1)
	assert.Equal(t, "op-1", resp.Operations[0].ID)
	assert.True(t, resp.Pagination.HasPrev)
	assert.False(t, resp.Pagination.HasNext)
}

func TestOperationServiceGetOperation(t *testing.T) {
	dao := &memoryDAO{
		operations: []repository.Operation{
			{ID: "op-1", Kind: "copy", Total: 2, Succeeded: 1, Skipped: 1},
		},
		items: map[string][]repository.OperationItem{
			"op-1": {
				{OperationID: "op-1", Path: "/tmp/a.txt", Target: "/backup/a.txt", Status: "ok"},
				{OperationID: "op-1", Path: "/tmp/b.txt", Status: "skipped"},
			},
		},
	}
	svc := NewOperationService(bulk.NewExecutor(dao), dao, nil)

	resp, err := svc.GetOperation(context.Background(), "op-1")
	require.NoError(t, err)
	assert.Equal(t, "copy", resp.Kind)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "/backup/a.txt", resp.Items[0].Target)
}

func TestOperationServiceGetOperationNotFound(t *testing.T) {
	svc, _ := newTestOperationService(t)

	_, err := svc.GetOperation(context.Background(), "no-such-id")
	require.Error(t, err)

	apiErr, ok := err.(*apierrors.APIError)
	require.True(t, ok)
	assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
}
