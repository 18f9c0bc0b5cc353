package mocks

import (
	"context"

	"atsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockInterviewService struct {
	mock.Mock
}

func (m *MockInterviewService) Create(ctx context.Context, in model.InterviewIn) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockInterviewService) List(ctx context.Context) ([]map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockInterviewService) AddFeedback(ctx context.Context, interviewID string, in model.FeedbackIn) (string, error) {
	args := m.Called(ctx, interviewID, in)
	return args.String(0), args.Error(1)
}
