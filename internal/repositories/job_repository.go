package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

// JobSearchCriteria is the normalized filter set the search service hands
// to the store. Optional predicates are nil/empty; set predicates are
// already merged and de-duplicated by the caller.
type JobSearchCriteria struct {
	Query            string
	Location         string
	JobTypes         []models.JobType
	CategoryID       string
	RemoteOnly       bool
	ExperienceLevels []models.ExperienceLevel
	MinSalary        *int
	MaxSalary        *int
	Limit            int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Update(job *models.Job) error
	UpdateStatus(jobID string, status models.JobStatus) error
	ListByEmployer(employerID string) ([]models.Job, error)
	SearchJobs(criteria JobSearchCriteria) ([]models.Job, error)
	CloseExpired(now time.Time) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").Preload("Category").
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":            job.Title,
		"description":      job.Description,
		"job_type":         job.JobType,
		"experience_level": job.ExperienceLevel,
		"location":         job.Location,
		"remote_allowed":   job.RemoteAllowed,
		"salary_min":       job.SalaryMin,
		"salary_max":       job.SalaryMax,
		"currency":         job.Currency,
		"category_id":      job.CategoryID,
		"requirements":     job.Requirements,
		"benefits":         job.Benefits,
		"expires_at":       job.ExpiresAt,
		"updated_at":       time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateStatus(jobID string, status models.JobStatus) error {
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) ListByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Preload("Company").Preload("Category").
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// SearchJobs composes exactly one read request from the criteria. Every
// predicate is ANDed; set predicates (job type, experience) are ORed
// internally through IN. Only active postings are ever returned.
func (r *JobRepositoryImpl) SearchJobs(criteria JobSearchCriteria) ([]models.Job, error) {
	var jobs []models.Job

	query := r.db.Model(&models.Job{}).
		Select("jobs.*").
		Joins("LEFT JOIN companies ON companies.id = jobs.company_id").
		Where("jobs.status = ?", models.JobStatusActive)

	// Text search: case-insensitive substring over title or description
	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("jobs.title ILIKE ? OR jobs.description ILIKE ?", search, search)
	}

	// Location matches the posting's own field or the company's
	if criteria.Location != "" {
		search := "%" + criteria.Location + "%"
		query = query.Where("jobs.location ILIKE ? OR companies.location ILIKE ?", search, search)
	}

	// Single member collapses to equality, several become set membership
	if len(criteria.JobTypes) == 1 {
		query = query.Where("jobs.job_type = ?", criteria.JobTypes[0])
	} else if len(criteria.JobTypes) > 1 {
		query = query.Where("jobs.job_type IN ?", criteria.JobTypes)
	}

	if criteria.CategoryID != "" {
		query = query.Where("jobs.category_id = ?", criteria.CategoryID)
	}

	// Remote-only never filters out remote jobs when false
	if criteria.RemoteOnly {
		query = query.Where("jobs.remote_allowed = ?", true)
	}

	if len(criteria.ExperienceLevels) == 1 {
		query = query.Where("jobs.experience_level = ?", criteria.ExperienceLevels[0])
	} else if len(criteria.ExperienceLevels) > 1 {
		query = query.Where("jobs.experience_level IN ?", criteria.ExperienceLevels)
	}

	// Null salaries drop out once a bound is set
	if criteria.MinSalary != nil {
		query = query.Where("jobs.salary_min >= ?", *criteria.MinSalary)
	}

	if criteria.MaxSalary != nil {
		query = query.Where("jobs.salary_max <= ?", *criteria.MaxSalary)
	}

	limit := criteria.Limit
	if limit <= 0 {
		limit = 100
	}

	err := query.Preload("Company").
		Order("jobs.created_at DESC").
		Limit(limit).
		Find(&jobs).Error

	return jobs, err
}

// CloseExpired closes active postings whose expiry has passed. Used by the
// background worker only; nothing in the search path depends on it.
func (r *JobRepositoryImpl) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Update("status", models.JobStatusClosed)
	return result.RowsAffected, result.Error
}
