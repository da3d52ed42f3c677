package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type SearchHandler struct {
	*BaseHandler
	searchService services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/search")
	{
		search.POST("/jobs", h.SearchJobs)
	}
}

// SearchJobs runs one composed query over active postings. A failed search
// renders an empty data array next to the error envelope so clients never
// keep stale rows.
func (h *SearchHandler) SearchJobs(c *gin.Context) {
	var req dto.SearchJobsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.searchService.SearchJobs(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
