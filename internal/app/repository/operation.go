package repository

import (
	"time"

	"file-wrangler/internal/app/model"
)

// Operation is one recorded bulk operation.
type Operation struct {
	ID          string
	Kind        string
	Root        string
	Destination string
	Total       int
	Succeeded   int
	Failed      int
	Skipped     int
	StartedAt   time.Time
	FinishedAt  time.Time
}

// OperationItem is one recorded per-entry outcome within an operation.
type OperationItem struct {
	ID          int64
	OperationID string
	Path        string
	Target      string
	Status      string
	ErrorKind   string
	Message     string
}

// OperationDAO persists bulk operation reports. Recording is best-effort
// from the executor's point of view; a failed write never fails the batch.
type OperationDAO interface {
	Close() error

	RecordReport(report *model.Report) error

	// GetRecent returns operations ordered by start time, newest first.
	// An empty kind matches all kinds.
	GetRecent(limit, offset int, kind string) ([]Operation, error)

	GetByID(id string) (*Operation, []OperationItem, error)

	Count(kind string) (int, error)
}
