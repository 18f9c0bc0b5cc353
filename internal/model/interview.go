package model

import "time"

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// InterviewIn is the request body for scheduling an interview.
type InterviewIn struct {
	CandidateID   string          `json:"candidate_id" validate:"required"`
	CandidateName string          `json:"candidate_name" validate:"required"`
	Interviewer   string          `json:"interviewer" validate:"required"`
	Time          *time.Time      `json:"time" validate:"required"`
	Status        InterviewStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	MeetingURL    string          `json:"meeting_url,omitempty"`
}

func (i *InterviewIn) ApplyDefaults() {
	if i.Status == "" {
		i.Status = InterviewScheduled
	}
}
