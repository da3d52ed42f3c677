package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

func newJobFixture() (*fakeJobRepo, JobService, *models.User, *models.Company) {
	jobRepo := newFakeJobRepo()
	companyRepo := newFakeCompanyRepo()
	userRepo := newFakeUserRepo()

	employer := userRepo.add(&models.User{
		Email:  "employer@test.com",
		Role:   models.UserRoleEmployer,
		Status: models.UserStatusActive,
	})
	company := companyRepo.add(&models.Company{Name: "Acme"})

	return jobRepo, NewJobService(jobRepo, companyRepo, userRepo), employer, company
}

func validCreateJobRequest(employerID, companyID string) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		EmployerID:      employerID,
		Title:           "Go Developer",
		Description:     "Build and operate backend services.",
		CompanyID:       companyID,
		JobType:         "full-time",
		ExperienceLevel: "mid",
	}
}

func TestCreateJob(t *testing.T) {
	t.Run("new postings start as drafts", func(t *testing.T) {
		_, svc, employer, company := newJobFixture()

		job, err := svc.CreateJob(validCreateJobRequest(employer.ID, company.ID))
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusDraft, job.Status)
		assert.Equal(t, "USD", job.Currency)
	})

	t.Run("talents cannot create postings", func(t *testing.T) {
		jobRepo, _, _, company := newJobFixture()
		userRepo := newFakeUserRepo()
		talent := userRepo.add(&models.User{
			Email: "talent@test.com",
			Role:  models.UserRoleTalent,
		})
		svc := NewJobService(jobRepo, newFakeCompanyRepo(), userRepo)

		_, err := svc.CreateJob(validCreateJobRequest(talent.ID, company.ID))
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	})

	t.Run("inverted salary range is rejected", func(t *testing.T) {
		_, svc, employer, company := newJobFixture()

		req := validCreateJobRequest(employer.ID, company.ID)
		lo, hi := 90000, 40000
		req.SalaryMin = &lo
		req.SalaryMax = &hi

		_, err := svc.CreateJob(req)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
	})

	t.Run("unknown company is a not found error", func(t *testing.T) {
		_, svc, employer, _ := newJobFixture()

		_, err := svc.CreateJob(validCreateJobRequest(employer.ID, "missing"))
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})
}

func TestGetJobVisibility(t *testing.T) {
	jobRepo, svc, employer, company := newJobFixture()

	draft := jobRepo.add(&models.Job{
		Title:      "Unpublished",
		EmployerID: employer.ID,
		CompanyID:  company.ID,
		Status:     models.JobStatusDraft,
	})
	active := jobRepo.add(&models.Job{
		Title:      "Published",
		EmployerID: employer.ID,
		CompanyID:  company.ID,
		Status:     models.JobStatusActive,
	})

	t.Run("active postings are public", func(t *testing.T) {
		job, err := svc.GetJob(active.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "Published", job.Title)
	})

	t.Run("drafts are visible to the owner only", func(t *testing.T) {
		job, err := svc.GetJob(draft.ID, employer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Unpublished", job.Title)

		_, err = svc.GetJob(draft.ID, "somebody-else")
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	})
}

func TestUpdateJobStatus(t *testing.T) {
	newDraft := func() (*fakeJobRepo, JobService, *models.Job, *models.User) {
		jobRepo, svc, employer, company := newJobFixture()
		job := jobRepo.add(&models.Job{
			Title:      "Go Developer",
			EmployerID: employer.ID,
			CompanyID:  company.ID,
			Status:     models.JobStatusDraft,
		})
		return jobRepo, svc, job, employer
	}

	t.Run("publishing a draft", func(t *testing.T) {
		jobRepo, svc, job, employer := newDraft()

		require.NoError(t, svc.UpdateJobStatus(job.ID, employer.ID, models.JobStatusActive))

		stored, err := jobRepo.FindByID(job.ID)
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusActive, stored.Status)
	})

	t.Run("draft cannot jump to paused", func(t *testing.T) {
		_, svc, job, employer := newDraft()

		err := svc.UpdateJobStatus(job.ID, employer.ID, models.JobStatusPaused)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	})

	t.Run("closed is terminal", func(t *testing.T) {
		_, svc, job, employer := newDraft()

		require.NoError(t, svc.UpdateJobStatus(job.ID, employer.ID, models.JobStatusActive))
		require.NoError(t, svc.UpdateJobStatus(job.ID, employer.ID, models.JobStatusClosed))

		err := svc.UpdateJobStatus(job.ID, employer.ID, models.JobStatusActive)
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
	})

	t.Run("only the owner may transition", func(t *testing.T) {
		_, svc, job, _ := newDraft()

		err := svc.UpdateJobStatus(job.ID, "somebody-else", models.JobStatusActive)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	})
}

func TestUpdateJob(t *testing.T) {
	jobRepo, svc, employer, company := newJobFixture()
	lo, hi := 50000, 90000
	job := jobRepo.add(&models.Job{
		Title:      "Go Developer",
		EmployerID: employer.ID,
		CompanyID:  company.ID,
		Status:     models.JobStatusActive,
		SalaryMin:  &lo,
		SalaryMax:  &hi,
	})

	t.Run("patches only the provided fields", func(t *testing.T) {
		title := "Senior Go Developer"
		updated, err := svc.UpdateJob(job.ID, employer.ID, &dto.UpdateJobRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)
		require.NotNil(t, updated.SalaryMin)
		assert.Equal(t, 50000, *updated.SalaryMin)
	})

	t.Run("rejects an update that inverts the salary range", func(t *testing.T) {
		newMin := 120000
		_, err := svc.UpdateJob(job.ID, employer.ID, &dto.UpdateJobRequest{SalaryMin: &newMin})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
	})

	t.Run("non-owners cannot update", func(t *testing.T) {
		title := "Hijacked"
		_, err := svc.UpdateJob(job.ID, "somebody-else", &dto.UpdateJobRequest{Title: &title})
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	})
}
