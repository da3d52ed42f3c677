package dto

import "time"

type CreateJobRequest struct {
	EmployerID      string     `json:"-"`
	Title           string     `json:"title" validate:"required,min=3,max=200"`
	Description     string     `json:"description" validate:"required,min=10"`
	CompanyID       string     `json:"company_id" validate:"required,uuid"`
	JobType         string     `json:"job_type" validate:"required,oneof=full-time part-time contract freelance internship"`
	ExperienceLevel string     `json:"experience_level" validate:"required,oneof=entry mid senior executive"`
	Location        *string    `json:"location,omitempty"`
	RemoteAllowed   bool       `json:"remote_allowed"`
	SalaryMin       *int       `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax       *int       `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Currency        string     `json:"currency" validate:"omitempty,len=3"`
	CategoryID      *string    `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Requirements    []string   `json:"requirements,omitempty"`
	Benefits        []string   `json:"benefits,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type UpdateJobRequest struct {
	Title           *string    `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description     *string    `json:"description,omitempty" validate:"omitempty,min=10"`
	JobType         *string    `json:"job_type,omitempty" validate:"omitempty,oneof=full-time part-time contract freelance internship"`
	ExperienceLevel *string    `json:"experience_level,omitempty" validate:"omitempty,oneof=entry mid senior executive"`
	Location        *string    `json:"location,omitempty"`
	RemoteAllowed   *bool      `json:"remote_allowed,omitempty"`
	SalaryMin       *int       `json:"salary_min,omitempty" validate:"omitempty,min=0"`
	SalaryMax       *int       `json:"salary_max,omitempty" validate:"omitempty,min=0"`
	Currency        *string    `json:"currency,omitempty" validate:"omitempty,len=3"`
	CategoryID      *string    `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Requirements    []string   `json:"requirements,omitempty"`
	Benefits        []string   `json:"benefits,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active closed paused"`
}
