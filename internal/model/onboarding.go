package model

type TaskAssignee string

const (
	AssigneeHR    TaskAssignee = "HR"
	AssigneeIT    TaskAssignee = "IT"
	AssigneeAdmin TaskAssignee = "Admin"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// OnboardingTaskIn is the request body for creating an onboarding task.
type OnboardingTaskIn struct {
	CandidateID string       `json:"candidate_id" validate:"required"`
	Task        string       `json:"task" validate:"required"`
	Assignee    TaskAssignee `json:"assignee" validate:"omitempty,oneof=HR IT Admin"`
	Status      TaskStatus   `json:"status" validate:"omitempty,oneof=pending in_progress done"`
}

func (o *OnboardingTaskIn) ApplyDefaults() {
	if o.Assignee == "" {
		o.Assignee = AssigneeHR
	}
	if o.Status == "" {
		o.Status = TaskPending
	}
}
