package service

import (
	"context"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// OnboardingService defines the use cases for onboarding tasks.
type OnboardingService interface {
	Create(ctx context.Context, in model.OnboardingTaskIn) (string, error)
	List(ctx context.Context) ([]map[string]any, error)
}

type onboardingService struct {
	store docstore.Store
}

// NewOnboardingService constructs a new OnboardingService.
func NewOnboardingService(store docstore.Store) OnboardingService {
	return &onboardingService{store: store}
}

func (s *onboardingService) Create(ctx context.Context, in model.OnboardingTaskIn) (string, error) {
	in.ApplyDefaults()
	return s.store.Insert(ctx, model.CollectionOnboardingTask, in)
}

func (s *onboardingService) List(ctx context.Context) ([]map[string]any, error) {
	return s.store.FindAll(ctx, model.CollectionOnboardingTask)
}
