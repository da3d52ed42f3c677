package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

type SavedJobRepository interface {
	Create(saved *models.SavedJob) error
	FindByTalentAndJob(talentID, jobID string) (*models.SavedJob, error)
	Delete(talentID, jobID string) error
	ListByTalent(talentID string) ([]models.SavedJob, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Create(saved *models.SavedJob) error {
	err := r.db.Create(saved).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Already saved; the toggle treats this as a no-op signal
		return gorm.ErrDuplicatedKey
	}
	return err
}

func (r *SavedJobRepositoryImpl) FindByTalentAndJob(talentID, jobID string) (*models.SavedJob, error) {
	var saved models.SavedJob
	err := r.db.Where("talent_id = ? AND job_id = ?", talentID, jobID).
		First(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedJobNotFound
		}
		return nil, err
	}
	return &saved, nil
}

func (r *SavedJobRepositoryImpl) Delete(talentID, jobID string) error {
	result := r.db.Where("talent_id = ? AND job_id = ?", talentID, jobID).
		Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *SavedJobRepositoryImpl) ListByTalent(talentID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("talent_id = ?", talentID).
		Order("saved_at DESC").
		Find(&saved).Error
	return saved, err
}
