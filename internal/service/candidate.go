package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
	"atsapi/internal/storage"
)

var (
	// ErrStorageDisabled is returned by resume operations when no object store
	// is configured.
	ErrStorageDisabled = errors.New("resume storage not configured")

	// ErrNoResume is returned when a candidate has no resume on file.
	ErrNoResume = errors.New("candidate has no resume")
)

// resumeURLTTL bounds how long a presigned download link stays valid.
const resumeURLTTL = 15 * time.Minute

// CandidateService defines the use cases for candidates, including the narrow
// stage-transition operation and resume file handling.
type CandidateService interface {
	Create(ctx context.Context, in model.CandidateIn) (string, error)
	List(ctx context.Context) ([]map[string]any, error)

	// UpdateStage sets the candidate's pipeline stage and stamps updated_at.
	UpdateStage(ctx context.Context, id string, stage model.CandidateStage) error

	// AttachResume stores the resume object and records it on the candidate
	// document. The object is removed again if the document update fails.
	AttachResume(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) error

	// ResumeURL returns a short-lived presigned download URL for the
	// candidate's stored resume.
	ResumeURL(ctx context.Context, id string) (string, error)
}

type candidateService struct {
	store   docstore.Store
	objects storage.Storage // nil when resume storage is disabled
}

// NewCandidateService constructs a new CandidateService. objects may be nil;
// resume operations then fail with ErrStorageDisabled.
func NewCandidateService(store docstore.Store, objects storage.Storage) CandidateService {
	return &candidateService{store: store, objects: objects}
}

func (s *candidateService) Create(ctx context.Context, in model.CandidateIn) (string, error) {
	in.ApplyDefaults()
	return s.store.Insert(ctx, model.CollectionCandidate, in)
}

func (s *candidateService) List(ctx context.Context) ([]map[string]any, error) {
	return s.store.FindAll(ctx, model.CollectionCandidate)
}

func (s *candidateService) UpdateStage(ctx context.Context, id string, stage model.CandidateStage) error {
	return s.store.SetFields(ctx, model.CollectionCandidate, id, map[string]any{
		"stage":      stage,
		"updated_at": timeNow().UTC(),
	})
}

func (s *candidateService) AttachResume(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) error {
	if s.objects == nil {
		return ErrStorageDisabled
	}

	key := filepath.ToSlash(filepath.Join("resumes", uuid.New().String()+filepath.Ext(filename)))
	if _, err := s.objects.Put(ctx, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
		Metadata:    map[string]string{"original-filename": filename},
	}); err != nil {
		return fmt.Errorf("upload resume: %w", err)
	}

	err := s.store.SetFields(ctx, model.CollectionCandidate, id, map[string]any{
		"resume_key":      key,
		"resume_filename": filename,
		"resume_url":      "/api/candidates/" + id + "/resume",
		"updated_at":      timeNow().UTC(),
	})
	if err != nil {
		// The candidate document was not updated; drop the orphaned object.
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			return fmt.Errorf("record resume failed: %v; rollback delete failed: %v", err, delErr)
		}
		return err
	}
	return nil
}

func (s *candidateService) ResumeURL(ctx context.Context, id string) (string, error) {
	if s.objects == nil {
		return "", ErrStorageDisabled
	}

	doc, err := s.store.FindByID(ctx, model.CollectionCandidate, id)
	if err != nil {
		return "", err
	}
	key, _ := doc["resume_key"].(string)
	if key == "" {
		return "", ErrNoResume
	}
	return s.objects.PresignGet(ctx, key, resumeURLTTL)
}
