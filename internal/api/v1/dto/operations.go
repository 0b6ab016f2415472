package dto

import (
	"time"

	"file-wrangler/internal/api/errors"
	"file-wrangler/internal/app/model"
	"file-wrangler/internal/app/rename"
	"file-wrangler/internal/app/repository"
)

// RunOperationRequest represents the request to run a bulk operation
type RunOperationRequest struct {
	Kind             string   `json:"kind" binding:"required,oneof=delete rename copy archive"`
	Root             string   `json:"root" binding:"required"`
	Paths            []string `json:"paths" binding:"required,min=1"`
	Destination      string   `json:"destination,omitempty"`
	Find             string   `json:"find,omitempty"`
	Replace          string   `json:"replace,omitempty"`
	UseRegex         bool     `json:"use_regex,omitempty"`
	Overwrite        bool     `json:"overwrite,omitempty"`
	RenameDuplicates bool     `json:"rename_duplicates,omitempty"`
	Confirm          bool     `json:"confirm,omitempty"`
}

// Validate performs domain-specific validation
func (r *RunOperationRequest) Validate() error {
	validationErrors := make(map[string]string)

	switch r.Kind {
	case "rename":
		if r.Find == "" {
			validationErrors["find"] = "is required for rename operations"
		}
	case "copy":
		if r.Destination == "" {
			validationErrors["destination"] = "is required for copy operations"
		}
	}

	if len(validationErrors) > 0 {
		return errors.NewValidationError("Invalid operation request", validationErrors)
	}

	return nil
}

// RenamePreviewRequest represents the request to preview a rename
type RenamePreviewRequest struct {
	Root     string   `json:"root" binding:"required"`
	Paths    []string `json:"paths" binding:"required,min=1"`
	Find     string   `json:"find" binding:"required"`
	Replace  string   `json:"replace"`
	UseRegex bool     `json:"use_regex,omitempty"`
}

// PlanItemResponse represents one row of a rename preview
type PlanItemResponse struct {
	Path    string `json:"path"`
	NewName string `json:"new_name"`
	NewPath string `json:"new_path"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

// PlanSummaryResponse totals a rename preview
type PlanSummaryResponse struct {
	Total     int `json:"total"`
	OK        int `json:"ok"`
	Unchanged int `json:"unchanged"`
	Conflicts int `json:"conflicts"`
	Invalid   int `json:"invalid"`
}

// RenamePreviewResponse represents a rename preview in API responses
type RenamePreviewResponse struct {
	Items   []PlanItemResponse  `json:"items"`
	Summary PlanSummaryResponse `json:"summary"`
}

// ItemResultResponse represents one per-entry outcome within an operation
type ItemResultResponse struct {
	Path      string `json:"path"`
	Target    string `json:"target,omitempty"`
	Status    string `json:"status"`
	ErrorKind string `json:"error_kind,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ReportResponse represents a completed bulk operation
type ReportResponse struct {
	ID          string               `json:"id"`
	Kind        string               `json:"kind"`
	Root        string               `json:"root,omitempty"`
	Destination string               `json:"destination,omitempty"`
	Total       int                  `json:"total"`
	Succeeded   int                  `json:"succeeded"`
	Failed      int                  `json:"failed"`
	Skipped     int                  `json:"skipped"`
	Started     time.Time            `json:"started"`
	Finished    time.Time            `json:"finished"`
	DurationMs  int64                `json:"duration_ms"`
	Items       []ItemResultResponse `json:"items"`
}

// ListOperationsQuery represents query parameters for listing operations
type ListOperationsQuery struct {
	Page  int    `form:"page,default=1" binding:"min=1"`
	Limit int    `form:"limit,default=20" binding:"min=1,max=100"`
	Kind  string `form:"kind" binding:"omitempty,oneof=delete rename copy archive"`
}

// OperationResponse represents a recorded operation in history listings
type OperationResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Root        string    `json:"root,omitempty"`
	Destination string    `json:"destination,omitempty"`
	Total       int       `json:"total"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	Skipped     int       `json:"skipped"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
}

// PaginatedOperationsResponse represents a paginated operation history
type PaginatedOperationsResponse struct {
	Operations []OperationResponse `json:"operations"`
	Pagination PaginationResponse  `json:"pagination"`
}

// OperationDetailResponse represents one operation with its item outcomes
type OperationDetailResponse struct {
	OperationResponse
	Items []ItemResultResponse `json:"items"`
}

// ToRenamePreviewResponse converts a rename plan to a response DTO
func ToRenamePreviewResponse(plan *rename.Plan) *RenamePreviewResponse {
	resp := &RenamePreviewResponse{
		Items: make([]PlanItemResponse, 0, len(plan.Items)),
		Summary: PlanSummaryResponse{
			Total:     plan.Summary.Total,
			OK:        plan.Summary.OK,
			Unchanged: plan.Summary.Unchanged,
			Conflicts: plan.Summary.Conflicts,
			Invalid:   plan.Summary.Invalid,
		},
	}
	for _, item := range plan.Items {
		resp.Items = append(resp.Items, PlanItemResponse{
			Path:    item.Entry.FullPath,
			NewName: item.NewName,
			NewPath: item.NewPath,
			Status:  item.Status,
			Reason:  item.Reason,
		})
	}
	return resp
}

// ToReportResponse converts an operation report to a response DTO
func ToReportResponse(report *model.Report) *ReportResponse {
	resp := &ReportResponse{
		ID:          report.ID,
		Kind:        string(report.Kind),
		Root:        report.Root,
		Destination: report.Destination,
		Total:       report.Total,
		Succeeded:   report.Succeeded,
		Failed:      report.Failed,
		Skipped:     report.Skipped,
		Started:     report.Started,
		Finished:    report.Finished,
		DurationMs:  report.Finished.Sub(report.Started).Milliseconds(),
		Items:       make([]ItemResultResponse, 0, len(report.Items)),
	}
	for _, item := range report.Items {
		resp.Items = append(resp.Items, ToItemResultResponse(item))
	}
	return resp
}

// ToItemResultResponse converts an item outcome to a response DTO
func ToItemResultResponse(item model.ItemResult) ItemResultResponse {
	return ItemResultResponse{
		Path:      item.Path,
		Target:    item.Target,
		Status:    string(item.Status),
		ErrorKind: item.ErrorKind,
		Message:   item.Message,
	}
}

// ToOperationResponse converts a stored operation to a response DTO
func ToOperationResponse(op repository.Operation) OperationResponse {
	return OperationResponse{
		ID:          op.ID,
		Kind:        op.Kind,
		Root:        op.Root,
		Destination: op.Destination,
		Total:       op.Total,
		Succeeded:   op.Succeeded,
		Failed:      op.Failed,
		Skipped:     op.Skipped,
		StartedAt:   op.StartedAt,
		FinishedAt:  op.FinishedAt,
	}
}
