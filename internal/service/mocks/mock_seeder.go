package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) Seed(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
