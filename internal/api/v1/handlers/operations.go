package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"file-wrangler/internal/api/errors"
	"file-wrangler/internal/api/middleware"
	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/api/v1/services"
)

// OperationsHandler handles bulk operation endpoints
type OperationsHandler struct {
	service services.OperationService
}

// NewOperationsHandler creates a new operations handler
func NewOperationsHandler(service services.OperationService) *OperationsHandler {
	return &OperationsHandler{
		service: service,
	}
}

// Run handles POST /api/v1/operations
// Executes a bulk operation and returns its report
//
// @Summary Run a bulk operation
// @Description Executes a delete, rename, copy or archive over the selected paths. The operation runs to completion and the per-item report is returned; a batch can finish with any mix of succeeded, failed and skipped items. Destructive operations must set confirm.
// @Tags operations
// @Accept json
// @Produce json
// @Param operation body dto.RunOperationRequest true "Operation to run"
// @Success 201 {object} dto.ReportResponse "Operation report"
// @Failure 400 {object} errors.APIError "Bad request - missing confirmation or malformed selection"
// @Failure 409 {object} errors.APIError "Another operation is already running"
// @Failure 422 {object} errors.APIError "Validation error or invalid rename pattern"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /operations [post]
func (h *OperationsHandler) Run(c *gin.Context) {
	var req dto.RunOperationRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Run(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// PreviewRename handles POST /api/v1/operations/rename-preview
// Computes the rename plan for a selection without executing it
//
// @Summary Preview a bulk rename
// @Description Computes the new name for every selected path and flags collisions and invalid names. Nothing is renamed.
// @Tags operations
// @Accept json
// @Produce json
// @Param preview body dto.RenamePreviewRequest true "Rename to preview"
// @Success 200 {object} dto.RenamePreviewResponse "Rename plan"
// @Failure 422 {object} errors.APIError "Validation error or invalid rename pattern"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /operations/rename-preview [post]
func (h *OperationsHandler) PreviewRename(c *gin.Context) {
	var req dto.RenamePreviewRequest

	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.PreviewRename(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// List handles GET /api/v1/operations
// Lists recorded operations, newest first
//
// @Summary List operation history
// @Description Retrieves a paginated list of recorded operations with optional filtering by kind
// @Tags operations
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(20) minimum(1) maximum(100)
// @Param kind query string false "Filter by operation kind" Enums(delete,rename,copy,archive)
// @Success 200 {object} dto.PaginatedOperationsResponse "List of operations with pagination"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Header 200 {string} X-Total-Count "Total number of operations"
// @Router /operations [get]
func (h *OperationsHandler) List(c *gin.Context) {
	var query dto.ListOperationsQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListOperations(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Pagination.Total))

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/v1/operations/:id
// Retrieves one recorded operation with its per-item outcomes
//
// @Summary Get operation by ID
// @Description Retrieves a recorded operation and every per-item outcome of the batch
// @Tags operations
// @Accept json
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} dto.OperationDetailResponse "Operation details"
// @Failure 400 {object} errors.APIError "Bad request - missing ID"
// @Failure 404 {object} errors.APIError "Operation not found"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /operations/{id} [get]
func (h *OperationsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		middleware.HandleError(c, errors.NewBadRequestError("Missing operation ID"))
		return
	}

	response, err := h.service.GetOperation(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
