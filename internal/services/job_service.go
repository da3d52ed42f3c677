package services

import (
	"fmt"

	"github.com/lib/pq"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	CreateJob(req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(jobID, requesterID string) (*models.Job, error)
	UpdateJob(jobID, requesterID string, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateJobStatus(jobID, requesterID string, status models.JobStatus) error
	ListEmployerJobs(employerID string) ([]models.Job, error)
}

type jobService struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// CreateJob creates a posting as a draft; it stays invisible to search
// until the employer publishes it.
func (s *jobService) CreateJob(req *dto.CreateJobRequest) (*models.Job, error) {
	employer, err := s.userRepo.FindByID(req.EmployerID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if employer.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if _, err := s.companyRepo.FindByID(req.CompanyID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMax < *req.SalaryMin {
		return nil, apperrors.ErrInvalidOperation("jobs", "maximum salary cannot be less than minimum salary")
	}

	jobType, ok := models.ParseJobType(req.JobType)
	if !ok {
		return nil, apperrors.ErrInvalidOperation("jobs", "unknown job type: "+req.JobType)
	}

	level, ok := models.ParseExperienceLevel(req.ExperienceLevel)
	if !ok {
		return nil, apperrors.ErrInvalidOperation("jobs", "unknown experience level: "+req.ExperienceLevel)
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		CompanyID:       req.CompanyID,
		EmployerID:      req.EmployerID,
		JobType:         jobType,
		ExperienceLevel: level,
		Location:        req.Location,
		RemoteAllowed:   req.RemoteAllowed,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Currency:        currency,
		CategoryID:      req.CategoryID,
		Requirements:    pq.StringArray(req.Requirements),
		Benefits:        pq.StringArray(req.Benefits),
		Status:          models.JobStatusDraft,
		ExpiresAt:       req.ExpiresAt,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// GetJob returns a posting if the requester is allowed to see it. Drafts,
// paused and closed postings are owner-only.
func (s *jobService) GetJob(jobID, requesterID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if !job.IsVisibleTo(requesterID) {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}
	return job, nil
}

func (s *jobService) UpdateJob(jobID, requesterID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if job.EmployerID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.JobType != nil {
		jobType, ok := models.ParseJobType(*req.JobType)
		if !ok {
			return nil, apperrors.ErrInvalidOperation("jobs", "unknown job type: "+*req.JobType)
		}
		job.JobType = jobType
	}
	if req.ExperienceLevel != nil {
		level, ok := models.ParseExperienceLevel(*req.ExperienceLevel)
		if !ok {
			return nil, apperrors.ErrInvalidOperation("jobs", "unknown experience level: "+*req.ExperienceLevel)
		}
		job.ExperienceLevel = level
	}
	if req.Location != nil {
		job.Location = req.Location
	}
	if req.RemoteAllowed != nil {
		job.RemoteAllowed = *req.RemoteAllowed
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.Currency != nil {
		job.Currency = *req.Currency
	}
	if req.CategoryID != nil {
		job.CategoryID = req.CategoryID
	}
	if req.Requirements != nil {
		job.Requirements = pq.StringArray(req.Requirements)
	}
	if req.Benefits != nil {
		job.Benefits = pq.StringArray(req.Benefits)
	}
	if req.ExpiresAt != nil {
		job.ExpiresAt = req.ExpiresAt
	}

	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax < *job.SalaryMin {
		return nil, apperrors.ErrInvalidOperation("jobs", "maximum salary cannot be less than minimum salary")
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// UpdateJobStatus moves a posting through its lifecycle. Only the owning
// employer may transition, and only along the allowed edges.
func (s *jobService) UpdateJobStatus(jobID, requesterID string, status models.JobStatus) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if job.EmployerID != requesterID {
		return apperrors.ErrInsufficientPermissions
	}

	if !models.IsJobStatusTransitionAllowed(job.Status, status) {
		return apperrors.ErrInvalidStatus("jobs",
			fmt.Sprintf("cannot transition job from %s to %s", job.Status, status))
	}

	if err := s.jobRepo.UpdateStatus(jobID, status); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobService) ListEmployerJobs(employerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}
