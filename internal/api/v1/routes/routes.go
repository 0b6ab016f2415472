package routes

import (
	"github.com/gin-gonic/gin"

	"file-wrangler/internal/api/v1/handlers"
	"file-wrangler/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	// File routes
	filesHandler := handlers.NewFilesHandler(container.FileService)
	files := router.Group("/files")
	{
		files.GET("", filesHandler.List)
		files.GET("/preview", filesHandler.Preview)
	}

	// Operation routes
	operationsHandler := handlers.NewOperationsHandler(container.OperationService)
	operations := router.Group("/operations")
	{
		operations.POST("", operationsHandler.Run)
		operations.POST("/rename-preview", operationsHandler.PreviewRename)
		operations.GET("", operationsHandler.List)
		operations.GET("/:id", operationsHandler.Get)
	}

	// Export routes
	if container.ExportService != nil {
		exportHandler := handlers.NewExportHandler(container.ExportService)
		router.GET("/export", exportHandler.Export)
	}
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	FileService      services.FileService
	OperationService services.OperationService
	ExportService    services.ExportService
}
