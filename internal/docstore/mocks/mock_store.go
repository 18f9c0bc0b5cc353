package mocks

import (
	"context"

	"atsapi/internal/docstore"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockStore) FindAll(ctx context.Context, collection string) ([]map[string]any, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockStore) FindByID(ctx context.Context, collection, id string) (map[string]any, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockStore) FindFirst(ctx context.Context, collection string, f docstore.Filter) (map[string]any, error) {
	args := m.Called(ctx, collection, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockStore) Count(ctx context.Context, collection string, f docstore.Filter) (int, error) {
	args := m.Called(ctx, collection, f)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) SetFields(ctx context.Context, collection, id string, fields map[string]any) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}

func (m *MockStore) Collections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
