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

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.OptionalAuthMiddleware())
	{
		jobs.GET("/:id", h.GetJob)
	}

	employer := r.Group("/employer/jobs")
	employer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleEmployer))
	{
		employer.POST("", h.CreateJob)
		employer.GET("", h.ListMyJobs)
		employer.PUT("/:id", h.UpdateJob)
		employer.PATCH("/:id/status", h.UpdateJobStatus)
	}
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID := c.Param("id")
	requesterID := middleware.GetUserID(c)

	job, err := h.jobService.GetJob(jobID, requesterID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.EmployerID = middleware.GetUserID(c)

	job, err := h.jobService.CreateJob(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	employerID := middleware.GetUserID(c)

	jobs, err := h.jobService.ListEmployerJobs(employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": jobs, "total": len(jobs)})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	status, ok := models.ParseJobStatus(req.Status)
	if !ok {
		apperrors.HandleError(c, apperrors.NewBadRequestError("unknown status: "+req.Status))
		return
	}

	if err := h.jobService.UpdateJobStatus(c.Param("id"), middleware.GetUserID(c), status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": status})
}
