package service

import (
	"context"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// OfferService defines the use cases for offers, including the narrow
// status-transition operation.
type OfferService interface {
	Create(ctx context.Context, in model.OfferIn) (string, error)
	List(ctx context.Context) ([]map[string]any, error)

	// UpdateStatus sets the offer's status and stamps updated_at.
	UpdateStatus(ctx context.Context, id string, status model.OfferStatus) error
}

type offerService struct {
	store docstore.Store
}

// NewOfferService constructs a new OfferService.
func NewOfferService(store docstore.Store) OfferService {
	return &offerService{store: store}
}

func (s *offerService) Create(ctx context.Context, in model.OfferIn) (string, error) {
	in.ApplyDefaults()
	return s.store.Insert(ctx, model.CollectionOffer, in)
}

func (s *offerService) List(ctx context.Context) ([]map[string]any, error) {
	return s.store.FindAll(ctx, model.CollectionOffer)
}

func (s *offerService) UpdateStatus(ctx context.Context, id string, status model.OfferStatus) error {
	return s.store.SetFields(ctx, model.CollectionOffer, id, map[string]any{
		"status":     status,
		"updated_at": timeNow().UTC(),
	})
}
