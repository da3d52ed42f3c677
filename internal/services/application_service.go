package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(req *dto.ApplyToJobRequest) (*models.JobApplication, error)
	Withdraw(applicationID, talentID string) error
	UpdateStatus(applicationID, employerID string, status models.ApplicationStatus) error
	ListByTalent(talentID string) ([]models.JobApplication, error)
	ListByJob(jobID, employerID string) ([]models.JobApplication, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits one application per (talent, job). The pre-insert existence
// check gives the friendly path; the unique index backs it up when two
// submissions race past the check.
func (s *applicationService) Apply(req *dto.ApplyToJobRequest) (*models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(req.JobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrInvalidOperation("applications", "this job is not accepting applications")
	}

	if existing, err := s.applicationRepo.FindByTalentAndJob(req.TalentID, req.JobID); err == nil && existing != nil {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.JobApplication{
		JobID:       req.JobID,
		TalentID:    req.TalentID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(app); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// Withdraw is the only talent-side mutation and is one-way.
func (s *applicationService) Withdraw(applicationID, talentID string) error {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if app.TalentID != talentID {
		return apperrors.ErrInsufficientPermissions
	}

	if app.Status == models.ApplicationStatusWithdrawn {
		return apperrors.ErrInvalidStatus("applications", "application is already withdrawn")
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, models.ApplicationStatusWithdrawn); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateStatus is the employer-side progression. Withdrawn applications are
// out of the employer's reach.
func (s *applicationService) UpdateStatus(applicationID, employerID string, status models.ApplicationStatus) error {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	job, err := s.jobRepo.FindByID(app.JobID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if job.EmployerID != employerID {
		return apperrors.ErrInsufficientPermissions
	}

	if app.Status == models.ApplicationStatusWithdrawn {
		return apperrors.ErrInvalidStatus("applications", "cannot update a withdrawn application")
	}

	if status == models.ApplicationStatusWithdrawn {
		return apperrors.ErrInvalidStatus("applications", "only the applicant can withdraw")
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, status); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *applicationService) ListByTalent(talentID string) ([]models.JobApplication, error) {
	apps, err := s.applicationRepo.ListByTalent(talentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *applicationService) ListByJob(jobID, employerID string) ([]models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if job.EmployerID != employerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.applicationRepo.ListByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}
