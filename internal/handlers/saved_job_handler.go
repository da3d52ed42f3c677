package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
)

type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

func (h *SavedJobHandler) RegisterRoutes(r *gin.RouterGroup) {
	saved := r.Group("/saved-jobs")
	saved.Use(middleware.AuthMiddleware())
	{
		saved.GET("", h.ListSaved)
		saved.POST("/:jobId/toggle", h.ToggleSave)
		saved.GET("/:jobId", h.IsSaved)
	}
}

func (h *SavedJobHandler) ListSaved(c *gin.Context) {
	saved, err := h.savedJobService.ListSaved(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": saved, "total": len(saved)})
}

func (h *SavedJobHandler) ToggleSave(c *gin.Context) {
	result, err := h.savedJobService.ToggleSave(middleware.GetUserID(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *SavedJobHandler) IsSaved(c *gin.Context) {
	saved, err := h.savedJobService.IsSaved(middleware.GetUserID(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
