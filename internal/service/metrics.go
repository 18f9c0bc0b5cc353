package service

import (
	"context"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// Demo figures mixed into the metrics payloads. They are presentation
// placeholders, not derived from stored data.
const (
	demoTimeToFillDays      = 24
	demoOfferAcceptanceRate = 0.72
)

var demoAvgTimePerStage = map[string]float64{
	"applied":   2.5,
	"screening": 3.1,
	"interview": 5.2,
	"offer":     1.3,
}

var demoTopSources = []LeadSource{
	{Source: "LinkedIn", Count: 48},
	{Source: "Referrals", Count: 31},
	{Source: "Careers Page", Count: 22},
}

// Metrics is the dashboard headline payload.
type Metrics struct {
	TotalJobs        int `json:"total_jobs"`
	ActiveCandidates int `json:"active_candidates"`
	OffersSent       int `json:"offers_sent"`
	TimeToFill       int `json:"time_to_fill"`
}

// Funnel holds live pipeline counts.
type Funnel struct {
	Applications int `json:"applications"`
	Interviews   int `json:"interviews"`
	Offers       int `json:"offers"`
	Hires        int `json:"hires"`
}

// LeadSource is one entry of the top-sources placeholder list.
type LeadSource struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// Analytics combines the live funnel with the placeholder stats.
type Analytics struct {
	Funnel              Funnel             `json:"funnel"`
	AvgTimePerStage     map[string]float64 `json:"avg_time_per_stage"`
	OfferAcceptanceRate float64            `json:"offer_acceptance_rate"`
	TopSources          []LeadSource       `json:"top_sources"`
}

// MetricsService computes the dashboard aggregates.
type MetricsService interface {
	Metrics(ctx context.Context) (*Metrics, error)
	Analytics(ctx context.Context) (*Analytics, error)
}

type metricsService struct {
	store docstore.Store
}

// NewMetricsService constructs a new MetricsService.
func NewMetricsService(store docstore.Store) MetricsService {
	return &metricsService{store: store}
}

func (s *metricsService) Metrics(ctx context.Context) (*Metrics, error) {
	totalJobs, err := s.store.Count(ctx, model.CollectionJob, docstore.Filter{})
	if err != nil {
		return nil, err
	}
	active, err := s.store.Count(ctx, model.CollectionCandidate, docstore.Filter{
		Field: "stage",
		NotIn: []string{string(model.StageRejected), string(model.StageHired)},
	})
	if err != nil {
		return nil, err
	}
	offersSent, err := s.store.Count(ctx, model.CollectionOffer, docstore.Filter{
		Field: "status",
		In:    []string{string(model.OfferSent), string(model.OfferAccepted), string(model.OfferDeclined)},
	})
	if err != nil {
		return nil, err
	}

	return &Metrics{
		TotalJobs:        totalJobs,
		ActiveCandidates: active,
		OffersSent:       offersSent,
		TimeToFill:       demoTimeToFillDays,
	}, nil
}

func (s *metricsService) Analytics(ctx context.Context) (*Analytics, error) {
	applications, err := s.store.Count(ctx, model.CollectionCandidate, docstore.Filter{})
	if err != nil {
		return nil, err
	}
	interviews, err := s.store.Count(ctx, model.CollectionInterview, docstore.Filter{})
	if err != nil {
		return nil, err
	}
	offers, err := s.store.Count(ctx, model.CollectionOffer, docstore.Filter{})
	if err != nil {
		return nil, err
	}
	hires, err := s.store.Count(ctx, model.CollectionCandidate, docstore.Filter{
		Field: "stage",
		In:    []string{string(model.StageHired)},
	})
	if err != nil {
		return nil, err
	}

	return &Analytics{
		Funnel: Funnel{
			Applications: applications,
			Interviews:   interviews,
			Offers:       offers,
			Hires:        hires,
		},
		AvgTimePerStage:     demoAvgTimePerStage,
		OfferAcceptanceRate: demoOfferAcceptanceRate,
		TopSources:          demoTopSources,
	}, nil
}
