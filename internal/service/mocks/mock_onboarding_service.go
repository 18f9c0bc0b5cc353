package mocks

import (
	"context"

	"atsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockOnboardingService struct {
	mock.Mock
}

func (m *MockOnboardingService) Create(ctx context.Context, in model.OnboardingTaskIn) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockOnboardingService) List(ctx context.Context) ([]map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}
