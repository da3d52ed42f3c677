package models

import (
	"time"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `gorm:"not null" json:"description"`
	CompanyID       string          `gorm:"type:uuid;not null;index" json:"company_id"`
	EmployerID      string          `gorm:"type:uuid;not null;index" json:"employer_id"`
	JobType         JobType         `gorm:"type:varchar(20);not null" json:"job_type"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);not null" json:"experience_level"`
	Location        *string         `json:"location,omitempty"`
	RemoteAllowed   bool            `gorm:"default:false" json:"remote_allowed"`
	SalaryMin       *int            `json:"salary_min,omitempty"`
	SalaryMax       *int            `json:"salary_max,omitempty"`
	Currency        string          `gorm:"type:varchar(3);default:'USD'" json:"currency"`
	CategoryID      *string         `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Requirements    pq.StringArray  `gorm:"type:text[]" json:"requirements,omitempty"`
	Benefits        pq.StringArray  `gorm:"type:text[]" json:"benefits,omitempty"`
	Status          JobStatus       `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	ExpiresAt       *time.Time      `json:"expires_at,omitempty"`

	// Relations
	Company  *Company     `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Category *JobCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// IsVisibleTo reports whether a posting may be shown to the given user.
// Active postings are public; everything else is owner-only.
func (j *Job) IsVisibleTo(userID string) bool {
	if j.Status == JobStatusActive {
		return true
	}
	return userID != "" && j.EmployerID == userID
}
