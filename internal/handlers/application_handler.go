package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("", h.Apply)
		apps.GET("", h.ListMine)
		apps.POST("/:id/withdraw", h.Withdraw)
	}

	employer := r.Group("/employer/jobs/:id/applications")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.GET("", h.ListForJob)
	}

	employerApps := r.Group("/employer/applications")
	employerApps.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employerApps.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyToJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.TalentID = middleware.GetUserID(c)

	app, err := h.applicationService.Apply(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationService.ListByTalent(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": apps, "total": len(apps)})
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.applicationService.Withdraw(c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "application withdrawn"})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	apps, err := h.applicationService.ListByJob(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": apps, "total": len(apps)})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	status := models.ApplicationStatus(req.Status)
	if status == models.ApplicationStatusWithdrawn {
		apperrors.HandleError(c, apperrors.NewBadRequestError("only the applicant can withdraw"))
		return
	}

	if err := h.applicationService.UpdateStatus(c.Param("id"), middleware.GetUserID(c), status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": status})
}
