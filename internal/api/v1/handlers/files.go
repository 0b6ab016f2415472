package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"file-wrangler/internal/api/middleware"
	"file-wrangler/internal/api/v1/dto"
	"file-wrangler/internal/api/v1/services"
)

// FilesHandler handles file listing and preview endpoints
type FilesHandler struct {
	service services.FileService
}

// NewFilesHandler creates a new files handler
func NewFilesHandler(service services.FileService) *FilesHandler {
	return &FilesHandler{
		service: service,
	}
}

// List handles GET /api/v1/files
// Lists a directory with filtering, sorting and pagination
//
// @Summary List files in a directory
// @Description Lists a directory flat or recursively, with optional name filtering by substring or regular expression
// @Tags files
// @Accept json
// @Produce json
// @Param root query string true "Directory to list"
// @Param pattern query string false "Filename filter pattern"
// @Param use_regex query bool false "Interpret pattern as a regular expression"
// @Param case_sensitive query bool false "Match case sensitively"
// @Param include_subdirs query bool false "Recurse into subdirectories"
// @Param type query string false "Entry type filter" default(all) Enums(all,file,dir)
// @Param sort_by query string false "Sort field" default(name) Enums(name,size,modified,path)
// @Param descending query bool false "Sort descending"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param limit query int false "Items per page" default(100) minimum(1) maximum(1000)
// @Success 200 {object} dto.ListFilesResponse "Directory listing"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 404 {object} errors.APIError "Directory not found"
// @Failure 422 {object} errors.APIError "Invalid filter pattern"
// @Header 200 {string} X-Total-Count "Total number of matching entries"
// @Router /files [get]
func (h *FilesHandler) List(c *gin.Context) {
	var query dto.ListFilesQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.ListFiles(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Pagination.Total))

	c.JSON(http.StatusOK, response)
}

// Preview handles GET /api/v1/files/preview
// Returns a capped preview of one file
//
// @Summary Preview file content
// @Description Returns up to max_bytes of a file. Binary content is flagged instead of returned.
// @Tags files
// @Accept json
// @Produce json
// @Param path query string true "File to preview"
// @Param max_bytes query int false "Preview size cap in bytes" minimum(1) maximum(1048576)
// @Success 200 {object} dto.PreviewResponse "File preview"
// @Failure 400 {object} errors.APIError "Bad request - invalid query parameters"
// @Failure 403 {object} errors.APIError "Permission denied"
// @Failure 404 {object} errors.APIError "File not found"
// @Router /files/preview [get]
func (h *FilesHandler) Preview(c *gin.Context) {
	var query dto.PreviewQuery

	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.PreviewFile(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
