package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"file-wrangler/internal/api/middleware"
	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/api/v1/services"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// Export handles GET /api/v1/export
// Streams the operation history in the requested format
//
// @Summary Export operation history
// @Description Downloads the recorded operation history as CSV, JSON or XLSX
// @Tags export
// @Produce text/csv,application/json,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "Export format" default(csv) Enums(csv,json,xlsx)
// @Param kind query string false "Filter by operation kind" Enums(delete,rename,copy,archive)
// @Param limit query int false "Maximum rows to export" minimum(1) maximum(100000)
// @Success 200 {file} file "Exported history"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Router /export [get]
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.ExportQuery

	if err := middleware.ValidateQuery(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	var contentType string
	var filename string
	switch req.Format {
	case "json":
		contentType = "application/json"
		filename = "operations.json"
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "operations.xlsx"
	default:
		contentType = "text/csv"
		filename = "operations.csv"
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	// Export directly to the response writer
	err := h.service.ExportOperations(c.Request.Context(), req, c.Writer)
	if err != nil {
		// The response may already be partially written, so the status code
		// cannot change. Surface the failure in the body.
		c.Writer.WriteString(fmt.Sprintf("\nError: %v", err))
		return
	}
}
