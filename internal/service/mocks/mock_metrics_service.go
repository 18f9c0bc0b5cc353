package mocks

import (
	"context"

	"atsapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) Metrics(ctx context.Context) (*service.Metrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Metrics), args.Error(1)
}

func (m *MockMetricsService) Analytics(ctx context.Context) (*service.Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Analytics), args.Error(1)
}
