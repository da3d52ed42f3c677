package dto

// ====================
//  Request DTOs
// ====================

// SearchJobsRequest is the raw filter set as submitted by a client. It
// carries both the legacy single-select job type and the multi-select set;
// the search service merges them before any query is issued.
type SearchJobsRequest struct {
	Query            string   `json:"query" form:"query"`
	Location         string   `json:"location" form:"location"`
	JobType          string   `json:"job_type" form:"job_type"`
	JobTypes         []string `json:"job_types" form:"job_types"`
	Category         string   `json:"category" form:"category"`
	RemoteOnly       bool     `json:"remote_only" form:"remote_only"`
	ExperienceLevels []string `json:"experience_levels" form:"experience_levels"`
	SalaryRange      *[2]int  `json:"salary_range,omitempty" form:"-"`
}

// ====================
//  Response DTOs
// ====================

// CompanySummary is the denormalized company slice carried on every search
// result row.
type CompanySummary struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type JobSearchResult struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	CompanyID       string          `json:"company_id"`
	JobType         string          `json:"job_type"`
	ExperienceLevel string          `json:"experience_level"`
	Location        *string         `json:"location,omitempty"`
	RemoteAllowed   bool            `json:"remote_allowed"`
	SalaryMin       *int            `json:"salary_min,omitempty"`
	SalaryMax       *int            `json:"salary_max,omitempty"`
	Currency        string          `json:"currency"`
	CategoryID      *string         `json:"category_id,omitempty"`
	CreatedAt       string          `json:"created_at"`
	Company         *CompanySummary `json:"company,omitempty"`
}

type JobSearchResponse struct {
	Data  []JobSearchResult `json:"data"`
	Total int               `json:"total"`
}
