package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type CompanyService interface {
	CreateCompany(req *dto.CreateCompanyRequest) (*models.Company, error)
	GetCompany(id string) (*models.Company, error)
	ListCompanies() ([]models.Company, error)
	ListCategories() ([]models.JobCategory, error)
}

type companyService struct {
	companyRepo  repositories.CompanyRepository
	categoryRepo repositories.CategoryRepository
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	categoryRepo repositories.CategoryRepository,
) CompanyService {
	return &companyService{
		companyRepo:  companyRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *companyService) CreateCompany(req *dto.CreateCompanyRequest) (*models.Company, error) {
	company := &models.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Industry:    req.Industry,
		Size:        req.Size,
		Location:    req.Location,
		CreatedBy:   &req.CreatedBy,
	}

	if err := s.companyRepo.Create(company); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return company, nil
}

func (s *companyService) GetCompany(id string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return company, nil
}

func (s *companyService) ListCompanies() ([]models.Company, error) {
	companies, err := s.companyRepo.List()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return companies, nil
}

func (s *companyService) ListCategories() ([]models.JobCategory, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}
