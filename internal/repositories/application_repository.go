package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job")
)

type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	FindByID(id string) (*models.JobApplication, error)
	FindByTalentAndJob(talentID, jobID string) (*models.JobApplication, error)
	ListByTalent(talentID string) ([]models.JobApplication, error)
	ListByJob(jobID string) ([]models.JobApplication, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application. The unique index on (talent_id, job_id)
// is the authoritative de-duplication guard; a duplicate-key failure is
// surfaced as ErrDuplicateApplication so callers can treat it as "already
// applied" instead of a server fault.
func (r *ApplicationRepositoryImpl) Create(app *models.JobApplication) error {
	err := r.db.Create(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.Preload("Job").Preload("Job.Company").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByTalentAndJob(talentID, jobID string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.Where("talent_id = ? AND job_id = ?", talentID, jobID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByTalent(talentID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("talent_id = ?", talentID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
