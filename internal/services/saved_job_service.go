package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type SavedJobService interface {
	ToggleSave(talentID, jobID string) (*dto.ToggleSaveResult, error)
	ListSaved(talentID string) ([]models.SavedJob, error)
	IsSaved(talentID, jobID string) (bool, error)
}

type savedJobService struct {
	savedJobRepo repositories.SavedJobRepository
	jobRepo      repositories.JobRepository
}

func NewSavedJobService(
	savedJobRepo repositories.SavedJobRepository,
	jobRepo repositories.JobRepository,
) SavedJobService {
	return &savedJobService{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
	}
}

// ToggleSave saves the job when unsaved and removes it when saved. The
// existence check decides the direction; two truly concurrent toggles can
// still race past it, in which case the unique index collapses the double
// insert into a single saved row.
func (s *savedJobService) ToggleSave(talentID, jobID string) (*dto.ToggleSaveResult, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	_, err := s.savedJobRepo.FindByTalentAndJob(talentID, jobID)
	if err == nil {
		if err := s.savedJobRepo.Delete(talentID, jobID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ToggleSaveResult{Saved: false}, nil
	}
	if !errors.Is(err, repositories.ErrSavedJobNotFound) {
		return nil, apperrors.InternalError(err)
	}

	saved := &models.SavedJob{
		JobID:    jobID,
		TalentID: talentID,
	}
	if err := s.savedJobRepo.Create(saved); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent save; the job is saved either way
			return &dto.ToggleSaveResult{Saved: true}, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.ToggleSaveResult{Saved: true}, nil
}

func (s *savedJobService) ListSaved(talentID string) ([]models.SavedJob, error) {
	saved, err := s.savedJobRepo.ListByTalent(talentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

func (s *savedJobService) IsSaved(talentID, jobID string) (bool, error) {
	_, err := s.savedJobRepo.FindByTalentAndJob(talentID, jobID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repositories.ErrSavedJobNotFound) {
		return false, nil
	}
	return false, apperrors.InternalError(err)
}
