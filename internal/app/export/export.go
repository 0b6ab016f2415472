// Package export renders operation history as CSV, JSON or Excel.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tealeg/xlsx"

	apperrors "file-wrangler/internal/app/errors"
	"file-wrangler/internal/app/repository"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Request describes one export.
type Request struct {
	Format Format
	// Kind filters to one operation kind; empty exports everything.
	Kind  string
	Limit int
}

const defaultExportLimit = 10000

// Service exports operation history through an OperationDAO.
type Service struct {
	history repository.OperationDAO
}

// NewService creates an export service.
func NewService(history repository.OperationDAO) *Service {
	return &Service{history: history}
}

// Export writes the requested operations to writer in the requested format.
func (s *Service) Export(ctx context.Context, req Request, writer io.Writer) error {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultExportLimit
	}

	operations, err := s.history.GetRecent(limit, 0, req.Kind)
	if err != nil {
		return fmt.Errorf("failed to fetch operations: %w", err)
	}

	switch req.Format {
	case FormatCSV:
		return exportCSV(operations, writer)
	case FormatJSON:
		return exportJSON(operations, writer)
	case FormatXLSX:
		return exportXLSX(operations, writer)
	default:
		return apperrors.Newf("unsupported export format: %s", req.Format)
	}
}

var exportHeader = []string{
	"ID",
	"Kind",
	"Root",
	"Destination",
	"Total",
	"Succeeded",
	"Failed",
	"Skipped",
	"Started At",
	"Finished At",
}

func exportCSV(operations []repository.Operation, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)
	defer csvWriter.Flush()

	if err := csvWriter.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, op := range operations {
		row := []string{
			op.ID,
			op.Kind,
			op.Root,
			op.Destination,
			strconv.Itoa(op.Total),
			strconv.Itoa(op.Succeeded),
			strconv.Itoa(op.Failed),
			strconv.Itoa(op.Skipped),
			op.StartedAt.Format(time.RFC3339),
			op.FinishedAt.Format(time.RFC3339),
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func exportJSON(operations []repository.Operation, writer io.Writer) error {
	exportData := make([]map[string]interface{}, 0, len(operations))
	for _, op := range operations {
		exportData = append(exportData, map[string]interface{}{
			"id":          op.ID,
			"kind":        op.Kind,
			"root":        op.Root,
			"destination": op.Destination,
			"total":       op.Total,
			"succeeded":   op.Succeeded,
			"failed":      op.Failed,
			"skipped":     op.Skipped,
			"started_at":  op.StartedAt,
			"finished_at": op.FinishedAt,
		})
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData)
}

func exportXLSX(operations []repository.Operation, writer io.Writer) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Operations")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, column := range exportHeader {
		headerRow.AddCell().Value = column
	}

	for _, op := range operations {
		row := sheet.AddRow()
		row.AddCell().Value = op.ID
		row.AddCell().Value = op.Kind
		row.AddCell().Value = op.Root
		row.AddCell().Value = op.Destination
		row.AddCell().Value = strconv.Itoa(op.Total)
		row.AddCell().Value = strconv.Itoa(op.Succeeded)
		row.AddCell().Value = strconv.Itoa(op.Failed)
		row.AddCell().Value = strconv.Itoa(op.Skipped)
		row.AddCell().Value = op.StartedAt.Format(time.RFC3339)
		row.AddCell().Value = op.FinishedAt.Format(time.RFC3339)
	}

	return file.Write(writer)
}
