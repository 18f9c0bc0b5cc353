package service

import (
	"context"

	"atsapi/internal/docstore"
	"atsapi/internal/model"
)

// MessageService defines the use cases for the communication hub.
type MessageService interface {
	Create(ctx context.Context, in model.MessageIn) (string, error)
	List(ctx context.Context) ([]map[string]any, error)
}

type messageService struct {
	store docstore.Store
}

// NewMessageService constructs a new MessageService.
func NewMessageService(store docstore.Store) MessageService {
	return &messageService{store: store}
}

func (s *messageService) Create(ctx context.Context, in model.MessageIn) (string, error) {
	if in.Timestamp == nil {
		now := timeNow().UTC()
		in.Timestamp = &now
	}
	return s.store.Insert(ctx, model.CollectionMessage, in)
}

func (s *messageService) List(ctx context.Context) ([]map[string]any, error) {
	return s.store.FindAll(ctx, model.CollectionMessage)
}
