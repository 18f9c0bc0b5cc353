package mocks

import (
	"context"
	"io"

	"atsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCandidateService struct {
	mock.Mock
}

func (m *MockCandidateService) Create(ctx context.Context, in model.CandidateIn) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockCandidateService) List(ctx context.Context) ([]map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockCandidateService) UpdateStage(ctx context.Context, id string, stage model.CandidateStage) error {
	args := m.Called(ctx, id, stage)
	return args.Error(0)
}

func (m *MockCandidateService) AttachResume(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) error {
	args := m.Called(ctx, id, r, filename, contentType, size)
	return args.Error(0)
}

func (m *MockCandidateService) ResumeURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
