package mocks

import (
	"context"

	"atsapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) Create(ctx context.Context, in model.OfferIn) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func (m *MockOfferService) List(ctx context.Context) ([]map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockOfferService) UpdateStatus(ctx context.Context, id string, status model.OfferStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
