package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id string) (*models.Company, error)
	ListByCreator(userID string) ([]models.Company, error)
	List() ([]models.Company, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepositoryImpl) FindByID(id string) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) ListByCreator(userID string) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) List() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Order("name ASC").Find(&companies).Error
	return companies, err
}

type CategoryRepository interface {
	List() ([]models.JobCategory, error)
	FindByID(id string) (*models.JobCategory, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) List() ([]models.JobCategory, error) {
	var categories []models.JobCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) FindByID(id string) (*models.JobCategory, error) {
	var category models.JobCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}
