package model

import "time"

type JobStatus string

const (
	JobDraft  JobStatus = "draft"
	JobOpen   JobStatus = "open"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
)

// JobIn is the request body for creating a job posting.
type JobIn struct {
	Title           string     `json:"title" validate:"required"`
	Department      string     `json:"department" validate:"required"`
	Location        string     `json:"location"`
	Status          JobStatus  `json:"status" validate:"omitempty,oneof=draft open paused closed"`
	Owner           string     `json:"owner" validate:"required"`
	Description     string     `json:"description,omitempty"`
	ApplicantsCount int        `json:"applicants_count" validate:"gte=0"`
	DatePosted      *time.Time `json:"date_posted,omitempty"`
}

// ApplyDefaults fills the documented field defaults on omitted values.
func (j *JobIn) ApplyDefaults() {
	if j.Location == "" {
		j.Location = "Remote"
	}
	if j.Status == "" {
		j.Status = JobOpen
	}
}
