package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJobStatusTransitionAllowed(t *testing.T) {
	cases := []struct {
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{JobStatusDraft, JobStatusActive, true},
		{JobStatusDraft, JobStatusClosed, true},
		{JobStatusDraft, JobStatusPaused, false},
		{JobStatusActive, JobStatusPaused, true},
		{JobStatusActive, JobStatusClosed, true},
		{JobStatusActive, JobStatusDraft, false},
		{JobStatusPaused, JobStatusActive, true},
		{JobStatusPaused, JobStatusClosed, true},
		{JobStatusPaused, JobStatusDraft, false},
		{JobStatusClosed, JobStatusActive, false},
		{JobStatusClosed, JobStatusDraft, false},
		{JobStatusClosed, JobStatusPaused, false},
	}

	for _, tc := range cases {
		got := IsJobStatusTransitionAllowed(tc.from, tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestParseJobStatus(t *testing.T) {
	status, ok := ParseJobStatus("active")
	assert.True(t, ok)
	assert.Equal(t, JobStatusActive, status)

	_, ok = ParseJobStatus("archived")
	assert.False(t, ok)
}

func TestParseJobType(t *testing.T) {
	jobType, ok := ParseJobType("full-time")
	assert.True(t, ok)
	assert.Equal(t, JobTypeFullTime, jobType)

	_, ok = ParseJobType("fulltime")
	assert.False(t, ok)
}

func TestParseExperienceLevel(t *testing.T) {
	level, ok := ParseExperienceLevel("executive")
	assert.True(t, ok)
	assert.Equal(t, ExperienceExecutive, level)

	_, ok = ParseExperienceLevel("lead")
	assert.False(t, ok)
}

func TestJobIsVisibleTo(t *testing.T) {
	job := &Job{EmployerID: "employer-1", Status: JobStatusActive}
	assert.True(t, job.IsVisibleTo(""))
	assert.True(t, job.IsVisibleTo("anyone"))

	job.Status = JobStatusDraft
	assert.False(t, job.IsVisibleTo(""))
	assert.False(t, job.IsVisibleTo("anyone"))
	assert.True(t, job.IsVisibleTo("employer-1"))
}
