package model

type CandidateStage string

const (
	StageApplied   CandidateStage = "applied"
	StageScreening CandidateStage = "screening"
	StageInterview CandidateStage = "interview"
	StageOffer     CandidateStage = "offer"
	StageHired     CandidateStage = "hired"
	StageRejected  CandidateStage = "rejected"
)

// CandidateIn is the request body for creating a candidate.
type CandidateIn struct {
	Name              string             `json:"name" validate:"required"`
	Email             string             `json:"email" validate:"required,email"`
	Phone             string             `json:"phone,omitempty"`
	CurrentRole       string             `json:"current_role,omitempty"`
	Stage             CandidateStage     `json:"stage" validate:"omitempty,oneof=applied screening interview offer hired rejected"`
	ResumeURL         string             `json:"resume_url,omitempty"`
	Skills            []string           `json:"skills"`
	AssessmentScores  map[string]float64 `json:"assessment_scores"`
	Notes             string             `json:"notes,omitempty"`
	JobID             string             `json:"job_id,omitempty"`
	SalaryExpectation string             `json:"salary_expectation,omitempty"`
	AvatarURL         string             `json:"avatar_url,omitempty"`
}

func (c *CandidateIn) ApplyDefaults() {
	if c.Stage == "" {
		c.Stage = StageApplied
	}
	if c.Skills == nil {
		c.Skills = []string{}
	}
	if c.AssessmentScores == nil {
		c.AssessmentScores = map[string]float64{}
	}
}

// StageUpdate is the body of the narrow stage-transition endpoint. The value
// is checked against the stage enum here so an out-of-range transition never
// reaches storage.
type StageUpdate struct {
	Stage CandidateStage `json:"stage" validate:"required,oneof=applied screening interview offer hired rejected"`
}
