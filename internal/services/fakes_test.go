package services

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// In-memory repository fakes for service unit tests. They implement only
// the behavior the services under test exercise.

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) add(job *models.Job) *models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	}
	r.jobs[job.ID] = job
	return job
}

func (r *fakeJobRepo) Create(job *models.Job) error {
	r.add(job)
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Update(job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) UpdateStatus(jobID string, status models.JobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.Status = status
	return nil
}

func (r *fakeJobRepo) ListByEmployer(employerID string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Job
	for _, job := range r.jobs {
		if job.EmployerID == employerID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) SearchJobs(criteria repositories.JobSearchCriteria) ([]models.Job, error) {
	return nil, nil
}

func (r *fakeJobRepo) CloseExpired(now time.Time) (int64, error) {
	return 0, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.JobApplication
	// forceDuplicate makes Create fail as if the unique index fired,
	// simulating a submission racing past the existence check.
	forceDuplicate bool
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.JobApplication)}
}

func (r *fakeApplicationRepo) Create(app *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceDuplicate {
		return repositories.ErrDuplicateApplication
	}
	for _, existing := range r.apps {
		if existing.TalentID == app.TalentID && existing.JobID == app.JobID {
			return repositories.ErrDuplicateApplication
		}
	}
	if app.ID == "" {
		app.ID = fmt.Sprintf("app-%d", len(r.apps)+1)
	}
	app.AppliedAt = time.Now()
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByTalentAndJob(talentID, jobID string) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.apps {
		if app.TalentID == talentID && app.JobID == jobID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) ListByTalent(talentID string) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobApplication
	for _, app := range r.apps {
		if app.TalentID == talentID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByJob(jobID string) ([]models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobApplication
	for _, app := range r.apps {
		if app.JobID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

type fakeSavedJobRepo struct {
	mu    sync.Mutex
	saved map[string]*models.SavedJob
	// forceDuplicate makes Create fail as the unique index would when a
	// concurrent save won the race.
	forceDuplicate bool
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{saved: make(map[string]*models.SavedJob)}
}

func savedKey(talentID, jobID string) string {
	return talentID + "/" + jobID
}

func (r *fakeSavedJobRepo) Create(saved *models.SavedJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceDuplicate {
		return gorm.ErrDuplicatedKey
	}
	key := savedKey(saved.TalentID, saved.JobID)
	if _, ok := r.saved[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	saved.ID = fmt.Sprintf("saved-%d", len(r.saved)+1)
	saved.SavedAt = time.Now()
	r.saved[key] = saved
	return nil
}

func (r *fakeSavedJobRepo) FindByTalentAndJob(talentID, jobID string) (*models.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved, ok := r.saved[savedKey(talentID, jobID)]
	if !ok {
		return nil, repositories.ErrSavedJobNotFound
	}
	copied := *saved
	return &copied, nil
}

func (r *fakeSavedJobRepo) Delete(talentID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := savedKey(talentID, jobID)
	if _, ok := r.saved[key]; !ok {
		return repositories.ErrSavedJobNotFound
	}
	delete(r.saved, key)
	return nil
}

func (r *fakeSavedJobRepo) ListByTalent(talentID string) ([]models.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.SavedJob
	for _, saved := range r.saved {
		if saved.TalentID == talentID {
			out = append(out, *saved)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	companies map[string]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *fakeCompanyRepo) add(company *models.Company) *models.Company {
	r.mu.Lock()
	defer r.mu.Unlock()
	if company.ID == "" {
		company.ID = fmt.Sprintf("company-%d", len(r.companies)+1)
	}
	r.companies[company.ID] = company
	return company
}

func (r *fakeCompanyRepo) Create(company *models.Company) error {
	r.add(company)
	return nil
}

func (r *fakeCompanyRepo) FindByID(id string) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	copied := *company
	return &copied, nil
}

func (r *fakeCompanyRepo) ListByCreator(userID string) ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Company
	for _, company := range r.companies {
		if company.CreatedBy != nil && *company.CreatedBy == userID {
			out = append(out, *company)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) List() ([]models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Company
	for _, company := range r.companies {
		out = append(out, *company)
	}
	return out, nil
}
