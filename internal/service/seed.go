package service

import (
	"context"
	"fmt"
	"time"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// Seeder loads demo fixtures. Each collection is seeded only while empty, so
// repeated invocations never duplicate data.
type Seeder interface {
	Seed(ctx context.Context) error
}

type seeder struct {
	store docstore.Store
}

// NewSeeder constructs a new Seeder.
func NewSeeder(store docstore.Store) Seeder {
	return &seeder{store: store}
}

func (s *seeder) Seed(ctx context.Context) error {
	if err := s.seedJobs(ctx); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}
	if err := s.seedCandidates(ctx); err != nil {
		return fmt.Errorf("seed candidates: %w", err)
	}
	if err := s.seedInterviews(ctx); err != nil {
		return fmt.Errorf("seed interviews: %w", err)
	}
	return nil
}

func (s *seeder) seedJobs(ctx context.Context) error {
	n, err := s.store.Count(ctx, model.CollectionJob, docstore.Filter{})
	if err != nil || n > 0 {
		return err
	}

	now := timeNow().UTC()
	threeDaysAgo := now.Add(-3 * 24 * time.Hour)
	jobs := []model.JobIn{
		{
			Title:       "Senior Frontend Engineer",
			Department:  "Engineering",
			Location:    "Remote",
			Status:      model.JobOpen,
			Owner:       "Alex Johnson",
			Description: "Own the web UI and design systems.",
			DatePosted:  &now,
		},
		{
			Title:       "Product Manager",
			Department:  "Product",
			Location:    "NYC",
			Status:      model.JobOpen,
			Owner:       "Priya Sharma",
			Description: "Drive roadmap and outcomes.",
			DatePosted:  &threeDaysAgo,
		},
	}
	for _, j := range jobs {
		if _, err := s.store.Insert(ctx, model.CollectionJob, j); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedCandidates(ctx context.Context) error {
	n, err := s.store.Count(ctx, model.CollectionCandidate, docstore.Filter{})
	if err != nil || n > 0 {
		return err
	}

	candidates := []model.CandidateIn{
		{
			Name:             "Jordan Lee",
			Email:            "jordan@example.com",
			CurrentRole:      "Frontend Engineer",
			Stage:            model.StageInterview,
			Skills:           []string{"React", "TypeScript", "Tailwind"},
			AssessmentScores: map[string]float64{"technical": 85, "culture": 78, "communication": 88},
			AvatarURL:        "https://i.pravatar.cc/120?img=5",
		},
		{
			Name:             "Samira Khan",
			Email:            "samira@example.com",
			CurrentRole:      "Product Manager",
			Stage:            model.StageApplied,
			Skills:           []string{"Roadmapping", "Analytics", "User Research"},
			AssessmentScores: map[string]float64{"technical": 70, "culture": 90, "communication": 92},
			AvatarURL:        "https://i.pravatar.cc/120?img=32",
		},
		{
			Name:             "Diego Martinez",
			Email:            "diego@example.com",
			CurrentRole:      "Backend Engineer",
			Stage:            model.StageOffer,
			Skills:           []string{"Go", "PostgreSQL", "Kubernetes"},
			AssessmentScores: map[string]float64{"technical": 91, "culture": 84, "communication": 80},
			AvatarURL:        "https://i.pravatar.cc/120?img=15",
		},
	}
	for i := range candidates {
		candidates[i].ApplyDefaults()
		if _, err := s.store.Insert(ctx, model.CollectionCandidate, candidates[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedInterviews(ctx context.Context) error {
	n, err := s.store.Count(ctx, model.CollectionInterview, docstore.Filter{})
	if err != nil || n > 0 {
		return err
	}

	// Schedule one interview for a candidate already in the interview stage.
	cand, err := s.store.FindFirst(ctx, model.CollectionCandidate, docstore.Filter{
		Field: "stage",
		In:    []string{string(model.StageInterview)},
	})
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil
		}
		return err
	}

	candidateID, _ := cand["id"].(string)
	candidateName, _ := cand["name"].(string)
	at := timeNow().UTC().Add(4 * time.Hour)
	interview := model.InterviewIn{
		CandidateID:   candidateID,
		CandidateName: candidateName,
		Interviewer:   "Alex Johnson",
		Time:          &at,
		Status:        model.InterviewScheduled,
		MeetingURL:    "https://meet.example.com/abc",
	}
	_, err = s.store.Insert(ctx, model.CollectionInterview, interview)
	return err
}
