package model

type Recommendation string

const (
	RecommendProceed Recommendation = "proceed"
	RecommendReject  Recommendation = "reject"
	RecommendHold    Recommendation = "hold"
)

// FeedbackIn is the request body for interview feedback. InterviewID is taken
// from the route path and overrides whatever the body carries.
type FeedbackIn struct {
	InterviewID    string         `json:"interview_id"`
	CandidateID    string         `json:"candidate_id" validate:"required"`
	Ratings        map[string]int `json:"ratings" validate:"required"`
	Recommendation Recommendation `json:"recommendation" validate:"omitempty,oneof=proceed reject hold"`
	Comments       string         `json:"comments,omitempty"`
}

func (f *FeedbackIn) ApplyDefaults() {
	if f.Recommendation == "" {
		f.Recommendation = RecommendHold
	}
	if f.Ratings == nil {
		f.Ratings = map[string]int{}
	}
}
