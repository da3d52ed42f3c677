package models

type UserStatus string
type UserRole string
type JobStatus string
type JobType string
type ExperienceLevel string
type ApplicationStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleTalent   UserRole = "talent"
	UserRoleEmployer UserRole = "employer"
	UserRoleAdmin    UserRole = "admin"

	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusPaused JobStatus = "paused"

	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeFreelance  JobType = "freelance"
	JobTypeInternship JobType = "internship"

	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// jobStatusTransitions lists the allowed status moves for a posting.
// Only the owning employer may trigger any of them.
var jobStatusTransitions = map[JobStatus][]JobStatus{
	JobStatusDraft:  {JobStatusActive, JobStatusClosed},
	JobStatusActive: {JobStatusPaused, JobStatusClosed},
	JobStatusPaused: {JobStatusActive, JobStatusClosed},
	JobStatusClosed: {},
}

// IsJobStatusTransitionAllowed reports whether a posting may move from one
// status to another. Closed is terminal.
func IsJobStatusTransitionAllowed(from, to JobStatus) bool {
	for _, allowed := range jobStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseJobStatus validates a raw status value coming from a request.
func ParseJobStatus(s string) (JobStatus, bool) {
	switch JobStatus(s) {
	case JobStatusDraft, JobStatusActive, JobStatusClosed, JobStatusPaused:
		return JobStatus(s), true
	}
	return "", false
}

// ParseJobType validates a raw job type value coming from a request.
func ParseJobType(s string) (JobType, bool) {
	switch JobType(s) {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeFreelance, JobTypeInternship:
		return JobType(s), true
	}
	return "", false
}

// ParseExperienceLevel validates a raw experience level value.
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	switch ExperienceLevel(s) {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return ExperienceLevel(s), true
	}
	return "", false
}
