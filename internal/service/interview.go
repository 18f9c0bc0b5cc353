package service

import (
	"context"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// InterviewService defines the use cases for interviews and their feedback.
type InterviewService interface {
	Create(ctx context.Context, in model.InterviewIn) (string, error)
	List(ctx context.Context) ([]map[string]any, error)

	// AddFeedback records feedback for the interview named in the route; the
	// path id wins over any interview_id carried in the body.
	AddFeedback(ctx context.Context, interviewID string, in model.FeedbackIn) (string, error)
}

type interviewService struct {
	store docstore.Store
}

// NewInterviewService constructs a new InterviewService.
func NewInterviewService(store docstore.Store) InterviewService {
	return &interviewService{store: store}
}

func (s *interviewService) Create(ctx context.Context, in model.InterviewIn) (string, error) {
	in.ApplyDefaults()
	return s.store.Insert(ctx, model.CollectionInterview, in)
}

func (s *interviewService) List(ctx context.Context) ([]map[string]any, error) {
	return s.store.FindAll(ctx, model.CollectionInterview)
}

func (s *interviewService) AddFeedback(ctx context.Context, interviewID string, in model.FeedbackIn) (string, error) {
	in.InterviewID = interviewID
	in.ApplyDefaults()
	return s.store.Insert(ctx, model.CollectionFeedback, in)
}
