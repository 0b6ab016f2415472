// Package bulk executes delete, rename, copy and archive operations over a
// selection of files. Every operation returns a Report with one ItemResult
// per entry; a failing entry never aborts the rest of the batch.
package bulk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/rename"
	"file-wrangler/internal/app/repository"
	"file-wrangler/internal/logging"
	"file-wrangler/internal/metrics"
)

// ObjectStore uploads local files to a remote bucket. Implemented by
// archive.Uploader.
type ObjectStore interface {
	Upload(ctx context.Context, localPath, objectName string) error
}

// Executor runs bulk operations and records their reports.
type Executor struct {
	history repository.OperationDAO

	// Observer, when set, receives every item result as it is recorded.
	// The CLI uses it to advance progress bars.
	Observer func(model.ItemResult)
}

// NewExecutor creates an executor. history may be nil, in which case
// reports are not persisted.
func NewExecutor(history repository.OperationDAO) *Executor {
	return &Executor{history: history}
}

// Delete removes every selected entry. Each entry is checked again at
// execution time; an entry that has already disappeared is reported as a
// per-item failure, not silently counted as done. Entries nested under a
// selected directory go with their parent and are reported as skipped.
func (e *Executor) Delete(ctx context.Context, root string, selection []model.FileEntry) (*model.Report, error) {
	if len(selection) == 0 {
		return nil, apperrors.ErrEmptySelection
	}

	covered := coveredBySelectedDir(selection)
	report := e.begin(model.OpDelete, root, "")
	for _, entry := range selection {
		if ctx.Err() != nil {
			e.record(report, skippedItem(entry.FullPath, "", "operation cancelled"))
			continue
		}
		if covered[entry.FullPath] {
			e.record(report, skippedItem(entry.FullPath, "", "removed with selected parent directory"))
			continue
		}
		e.record(report, deleteOne(entry))
	}
	return e.finish(report), nil
}

// coveredBySelectedDir marks entries nested under another selected
// directory. RemoveAll on the parent takes them too; deleting them
// separately would only report phantom failures.
func coveredBySelectedDir(selection []model.FileEntry) map[string]bool {
	dirs := make(map[string]bool)
	for _, entry := range selection {
		if entry.IsDir {
			dirs[filepath.Clean(entry.FullPath)] = true
		}
	}

	covered := make(map[string]bool)
	if len(dirs) == 0 {
		return covered
	}
	for _, entry := range selection {
		path := filepath.Clean(entry.FullPath)
		for {
			parent := filepath.Dir(path)
			if parent == path {
				break
			}
			if dirs[parent] {
				covered[entry.FullPath] = true
				break
			}
			path = parent
		}
	}
	return covered
}

func deleteOne(entry model.FileEntry) model.ItemResult {
	info, err := os.Lstat(entry.FullPath)
	if err != nil {
		return failedItem(entry.FullPath, "", err)
	}

	if info.IsDir() {
		err = os.RemoveAll(entry.FullPath)
	} else {
		err = os.Remove(entry.FullPath)
	}
	if err != nil {
		return failedItem(entry.FullPath, "", err)
	}
	return okItem(entry.FullPath, "")
}

// Rename executes a confirmed plan. Non-executable plan items are reported
// as skipped with the reason the plan assigned them. Executable items
// re-check their target right before the move so a file that appeared since
// the preview surfaces as a collision instead of being overwritten.
func (e *Executor) Rename(ctx context.Context, root string, plan *rename.Plan) (*model.Report, error) {
	if plan == nil || len(plan.Items) == 0 {
		return nil, apperrors.ErrEmptySelection
	}

	report := e.begin(model.OpRename, root, "")
	results := make([]model.ItemResult, len(plan.Items))

	pending := make([]int, 0, len(plan.Items))
	for i, item := range plan.Items {
		switch item.Status {
		case rename.StatusUnchanged:
			results[i] = skippedItem(item.Entry.FullPath, "", "name unchanged")
		case rename.StatusConflict:
			results[i] = skippedKind(item.Entry.FullPath, item.NewPath, apperrors.KindCollision, item.Reason)
		case rename.StatusInvalid:
			results[i] = skippedKind(item.Entry.FullPath, item.NewPath, apperrors.KindInvalidName, item.Reason)
		default:
			pending = append(pending, i)
		}
	}

	// A rename whose target is vacated by another rename in the same batch
	// must wait for it. Sweep the pending items until a pass makes no
	// progress; whatever still stalls then is a real collision.
	for len(pending) > 0 {
		if ctx.Err() != nil {
			for _, i := range pending {
				item := plan.Items[i]
				results[i] = skippedItem(item.Entry.FullPath, item.NewPath, "operation cancelled")
			}
			break
		}

		var stalled []int
		for _, i := range pending {
			item := plan.Items[i]
			if ctx.Err() != nil {
				stalled = append(stalled, i)
				continue
			}
			if _, err := os.Lstat(item.NewPath); err == nil {
				stalled = append(stalled, i)
				continue
			}
			if err := os.Rename(item.Entry.FullPath, item.NewPath); err != nil {
				results[i] = failedItem(item.Entry.FullPath, item.NewPath, err)
				continue
			}
			results[i] = okItem(item.Entry.FullPath, item.NewPath)
		}

		if ctx.Err() == nil && len(stalled) == len(pending) {
			for _, i := range stalled {
				item := plan.Items[i]
				results[i] = skippedKind(item.Entry.FullPath, item.NewPath, apperrors.KindCollision, "target already exists")
			}
			break
		}
		pending = stalled
	}

	for _, result := range results {
		e.record(report, result)
	}
	return e.finish(report), nil
}

// Archive uploads every selected file to the object store. Directories are
// skipped; archive a recursive listing to capture their contents.
func (e *Executor) Archive(ctx context.Context, root string, store ObjectStore, selection []model.FileEntry) (*model.Report, error) {
	if store == nil {
		return nil, apperrors.New("object storage is not configured")
	}
	if len(selection) == 0 {
		return nil, apperrors.ErrEmptySelection
	}

	report := e.begin(model.OpArchive, root, "")
	for _, entry := range selection {
		if ctx.Err() != nil {
			e.record(report, skippedItem(entry.FullPath, "", "operation cancelled"))
			continue
		}
		if entry.IsDir {
			e.record(report, skippedItem(entry.FullPath, "", "directories are not archived"))
			continue
		}

		object := objectName(root, entry)
		if err := store.Upload(ctx, entry.FullPath, object); err != nil {
			e.record(report, failedItem(entry.FullPath, object, err))
			continue
		}
		e.record(report, okItem(entry.FullPath, object))
	}
	return e.finish(report), nil
}

// objectName keys uploads by root-relative path so recursive selections
// keep their directory structure in the bucket.
func objectName(root string, entry model.FileEntry) string {
	if root != "" {
		if rel, err := filepath.Rel(root, entry.FullPath); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return entry.Name
}

func (e *Executor) begin(kind model.OperationKind, root, destination string) *model.Report {
	return &model.Report{
		ID:          uuid.New().String(),
		Kind:        kind,
		Root:        root,
		Destination: destination,
		Started:     time.Now().UTC(),
	}
}

func (e *Executor) record(report *model.Report, item model.ItemResult) {
	report.Record(item)
	if e.Observer != nil {
		e.Observer(item)
	}
}

// finish stamps the report, observes metrics and persists history.
// History failures are logged, never surfaced; the operation itself
// already happened.
func (e *Executor) finish(report *model.Report) *model.Report {
	report.Finished = time.Now().UTC()
	report.Total = len(report.Items)

	metrics.RecordOperation(string(report.Kind), report.Finished.Sub(report.Started),
		report.Succeeded, report.Failed, report.Skipped)

	if e.history != nil {
		if err := e.history.RecordReport(report); err != nil {
			logging.Warn("failed to record operation history",
				zap.String("operation_id", report.ID),
				zap.String("kind", string(report.Kind)),
				zap.Error(err))
		}
	}
	return report
}

func okItem(path, target string) model.ItemResult {
	return model.ItemResult{Path: path, Target: target, Status: model.StatusOK}
}

func failedItem(path, target string, err error) model.ItemResult {
	return model.ItemResult{
		Path:      path,
		Target:    target,
		Status:    model.StatusFailed,
		ErrorKind: string(apperrors.KindOf(err)),
		Message:   err.Error(),
	}
}

func skippedItem(path, target, reason string) model.ItemResult {
	return model.ItemResult{
		Path:    path,
		Target:  target,
		Status:  model.StatusSkipped,
		Message: reason,
	}
}

func skippedKind(path, target string, kind apperrors.Kind, reason string) model.ItemResult {
	return model.ItemResult{
		Path:      path,
		Target:    target,
		Status:    model.StatusSkipped,
		ErrorKind: string(kind),
		Message:   reason,
	}
}
