package models

import "time"

type JobApplication struct {
	ID          string            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_talent_job" json:"job_id"`
	TalentID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_talent_job" json:"talent_id"`
	CoverLetter *string           `json:"cover_letter,omitempty"`
	ResumeURL   *string           `json:"resume_url,omitempty"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedAt   time.Time         `gorm:"default:now()" json:"applied_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

type SavedJob struct {
	ID       string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	JobID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_talent_job" json:"job_id"`
	TalentID string    `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_talent_job" json:"talent_id"`
	SavedAt  time.Time `gorm:"default:now()" json:"saved_at"`

	// Relations
	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
