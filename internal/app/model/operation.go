package model

import "time"

// OperationKind identifies a bulk operation.
type OperationKind string

const (
	OpDelete  OperationKind = "delete"
	OpRename  OperationKind = "rename"
	OpCopy    OperationKind = "copy"
	OpArchive OperationKind = "archive"
)

// ItemStatus is the per-entry outcome within one batch.
type ItemStatus string

const (
	StatusOK      ItemStatus = "ok"
	StatusFailed  ItemStatus = "failed"
	StatusSkipped ItemStatus = "skipped"
)

// ItemResult records what happened to one entry of a batch.
type ItemResult struct {
	Path      string     `json:"path"`
	Target    string     `json:"target,omitempty"`
	Status    ItemStatus `json:"status"`
	ErrorKind string     `json:"error_kind,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// Report summarizes one bulk operation. A batch of N entries can finish in
// any combination of per-item outcomes; callers must read the report rather
// than assume all-or-nothing.
type Report struct {
	ID          string        `json:"id"`
	Kind        OperationKind `json:"kind"`
	Root        string        `json:"root,omitempty"`
	Destination string        `json:"destination,omitempty"`
	Total       int           `json:"total"`
	Succeeded   int           `json:"succeeded"`
	Failed      int           `json:"failed"`
	Skipped     int           `json:"skipped"`
	Started     time.Time     `json:"started"`
	Finished    time.Time     `json:"finished"`
	Items       []ItemResult  `json:"items,omitempty"`
}

// Record appends one item outcome and updates the summary counters.
func (r *Report) Record(item ItemResult) {
	r.Items = append(r.Items, item)
	switch item.Status {
	case StatusOK:
		r.Succeeded++
	case StatusFailed:
		r.Failed++
	case StatusSkipped:
		r.Skipped++
	}
}
