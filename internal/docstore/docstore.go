package docstore

import (
	"context"
	"errors"
)

// Package docstore is the persistence adapter for the recruiting collections.
// Every entity is stored as an independent JSON document identified by a
// store-assigned id, which is surfaced to callers as an opaque string.

var (
	// ErrUnavailable is returned by write operations when no store handle exists.
	// Read operations degrade to empty results instead.
	ErrUnavailable = errors.New("document store unavailable")

	// ErrNotFound is returned when an update targets a document that does not exist.
	ErrNotFound = errors.New("document not found")
)

// Filter selects documents by set membership on a single top-level field.
// The zero Filter matches every document in the collection. In and NotIn are
// mutually exclusive; when both are set, In wins.
type Filter struct {
	Field string
	In    []string
	NotIn []string
}

// Store defines data access for document collections. No business logic here —
// strictly persistence operations.
type Store interface {
	// Insert stores doc in the named collection and returns the assigned id.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// FindAll returns every document in the collection, each with its id
	// injected as the string field "id". Natural order; an empty slice (not an
	// error) when the store is unavailable.
	FindAll(ctx context.Context, collection string) ([]map[string]any, error)

	// FindByID returns a single document by id, with "id" injected.
	FindByID(ctx context.Context, collection, id string) (map[string]any, error)

	// FindFirst returns the first document matching f, or ErrNotFound.
	FindFirst(ctx context.Context, collection string, f Filter) (map[string]any, error)

	// Count returns the number of documents matching f; 0 when the store is
	// unavailable.
	Count(ctx context.Context, collection string, f Filter) (int, error)

	// SetFields merges fields into the document's payload. ErrNotFound when no
	// document matched the id.
	SetFields(ctx context.Context, collection, id string, fields map[string]any) error

	// Collections lists the collection names that currently hold documents.
	Collections(ctx context.Context) ([]string, error)
}
