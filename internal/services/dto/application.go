package dto

type ApplyToJobRequest struct {
	TalentID    string  `json:"-"`
	JobID       string  `json:"job_id" validate:"required,uuid"`
	CoverLetter *string `json:"cover_letter,omitempty"`
	ResumeURL   *string `json:"resume_url,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed interview offer rejected"`
}

// ToggleSaveResult tells the caller which way the toggle went.
type ToggleSaveResult struct {
	Saved bool `json:"saved"`
}
