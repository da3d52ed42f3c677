package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/companies")
	{
		companies.GET("", h.ListCompanies)
		companies.GET("/:id", h.GetCompany)
	}

	companiesAuth := r.Group("/companies")
	companiesAuth.Use(middleware.AuthMiddleware())
	{
		companiesAuth.POST("", h.CreateCompany)
	}

	r.GET("/categories", h.ListCategories)
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": companies, "total": len(companies)})
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.CreatedBy = middleware.GetUserID(c)

	company, err := h.companyService.CreateCompany(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) ListCategories(c *gin.Context) {
	categories, err := h.companyService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories, "total": len(categories)})
}
