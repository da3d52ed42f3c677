package routes

import (
	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/handlers"
)

// RegisterRoutes wires every handler group under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.SearchHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.ApplicationHandler.RegisterRoutes(api)
		appHandlers.SavedJobHandler.RegisterRoutes(api)
		appHandlers.CompanyHandler.RegisterRoutes(api)
	}
}
