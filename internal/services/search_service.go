package services

import (
	"reflect"
	"strings"
	"sync"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// Sentinel values the clients send to mean "no filter".
const (
	AllJobTypesSentinel   = "all-types"
	AllCategoriesSentinel = "all-categories"
)

type SearchService interface {
	// SearchJobs runs one composed read against the job store.
	SearchJobs(req *dto.SearchJobsRequest) (*dto.JobSearchResponse, error)
	// ClearResults drops the retained result set.
	ClearResults()
}

type searchService struct {
	jobRepo       repositories.JobRepository
	maxResults    int
	salaryCeiling int

	// Retained state for the skip-if-unchanged optimization and the
	// stale-response guard. One searchService instance serves one search
	// surface, so a single slot is enough.
	mu           sync.Mutex
	seq          uint64
	lastCriteria *repositories.JobSearchCriteria
	lastResponse *dto.JobSearchResponse
}

func NewSearchService(jobRepo repositories.JobRepository, maxResults, salaryCeiling int) SearchService {
	if maxResults <= 0 {
		maxResults = 100
	}
	if salaryCeiling <= 0 {
		salaryCeiling = 200000
	}
	return &searchService{
		jobRepo:       jobRepo,
		maxResults:    maxResults,
		salaryCeiling: salaryCeiling,
	}
}

func (s *searchService) SearchJobs(req *dto.SearchJobsRequest) (*dto.JobSearchResponse, error) {
	criteria := NormalizeFilters(req, s.salaryCeiling, s.maxResults)

	s.mu.Lock()
	if s.lastCriteria != nil && reflect.DeepEqual(*s.lastCriteria, criteria) {
		// Structurally identical to the previous executed search: keep the
		// retained result set instead of re-issuing the request.
		response := s.lastResponse
		s.mu.Unlock()
		return response, nil
	}
	s.seq++
	mySeq := s.seq
	s.mu.Unlock()

	jobs, err := s.jobRepo.SearchJobs(criteria)
	if err != nil {
		s.mu.Lock()
		// Failed searches never retain stale results
		s.lastCriteria = nil
		s.lastResponse = nil
		s.mu.Unlock()
		return &dto.JobSearchResponse{Data: []dto.JobSearchResult{}},
			apperrors.Wrap(err, apperrors.CodeDatabaseError, "search", "Failed to search jobs", 500)
	}

	response := buildSearchResponse(jobs)

	s.mu.Lock()
	if s.seq == mySeq {
		// Only the most recent request may publish its results; a slow
		// older search completing late must not overwrite fresher state.
		s.lastCriteria = &criteria
		s.lastResponse = response
	}
	s.mu.Unlock()

	return response, nil
}

func (s *searchService) ClearResults() {
	s.mu.Lock()
	s.lastCriteria = nil
	s.lastResponse = nil
	s.mu.Unlock()
}

// NormalizeFilters turns a raw request into the de-duplicated criteria set
// the repository consumes. All sentinel handling and the legacy/multi-select
// job type merge live here so the translation is testable without a store.
func NormalizeFilters(req *dto.SearchJobsRequest, salaryCeiling, maxResults int) repositories.JobSearchCriteria {
	criteria := repositories.JobSearchCriteria{
		Query:      strings.TrimSpace(req.Query),
		Location:   strings.TrimSpace(req.Location),
		RemoteOnly: req.RemoteOnly,
		Limit:      maxResults,
	}

	criteria.JobTypes = mergeJobTypes(req.JobType, req.JobTypes)

	if req.Category != "" && req.Category != AllCategoriesSentinel {
		criteria.CategoryID = req.Category
	}

	for _, raw := range req.ExperienceLevels {
		if level, ok := models.ParseExperienceLevel(raw); ok {
			criteria.ExperienceLevels = append(criteria.ExperienceLevels, level)
		}
	}

	if req.SalaryRange != nil {
		lo, hi := req.SalaryRange[0], req.SalaryRange[1]
		// The absolute bounds are "unconstrained" sentinels, not filters
		if lo > 0 {
			criteria.MinSalary = &lo
		}
		if hi < salaryCeiling {
			criteria.MaxSalary = &hi
		}
	}

	return criteria
}

// mergeJobTypes folds the legacy single selector and the multi-select set
// into one de-duplicated list, dropping the no-filter sentinels.
func mergeJobTypes(legacy string, selected []string) []models.JobType {
	var merged []models.JobType
	seen := make(map[models.JobType]bool)

	add := func(raw string) {
		if raw == "" || raw == AllJobTypesSentinel {
			return
		}
		jobType, ok := models.ParseJobType(raw)
		if !ok || seen[jobType] {
			return
		}
		seen[jobType] = true
		merged = append(merged, jobType)
	}

	add(legacy)
	for _, raw := range selected {
		add(raw)
	}

	return merged
}

func buildSearchResponse(jobs []models.Job) *dto.JobSearchResponse {
	results := make([]dto.JobSearchResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		result := dto.JobSearchResult{
			ID:              job.ID,
			Title:           job.Title,
			Description:     job.Description,
			CompanyID:       job.CompanyID,
			JobType:         string(job.JobType),
			ExperienceLevel: string(job.ExperienceLevel),
			Location:        job.Location,
			RemoteAllowed:   job.RemoteAllowed,
			SalaryMin:       job.SalaryMin,
			SalaryMax:       job.SalaryMax,
			Currency:        job.Currency,
			CategoryID:      job.CategoryID,
			CreatedAt:       job.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if job.Company != nil {
			result.Company = &dto.CompanySummary{
				Name:    job.Company.Name,
				LogoURL: job.Company.LogoURL,
			}
		}
		results = append(results, result)
	}
	return &dto.JobSearchResponse{Data: results, Total: len(results)}
}
