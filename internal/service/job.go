package service

import (
	"context"
	"time"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// Overridable for tests, same trick the database package uses for sql.Open.
var timeNow = time.Now

// JobService defines the use cases for job postings.
type JobService interface {
	// Create inserts a validated job posting and returns the assigned id.
	Create(ctx context.Context, in model.JobIn) (string, error)

	// List returns every job document verbatim, ids included.
	List(ctx context.Context) ([]map[string]any, error)
}

type jobService struct {
	store docstore.Store
}

// NewJobService constructs a new JobService.
func NewJobService(store docstore.Store) JobService {
	return &jobService{store: store}
}

func (s *jobService) Create(ctx context.Context, in model.JobIn) (string, error) {
	in.ApplyDefaults()
	return s.store.Insert(ctx, model.CollectionJob, in)
}

func (s *jobService) List(ctx context.Context) ([]map[string]any, error) {
	return s.store.FindAll(ctx, model.CollectionJob)
}
