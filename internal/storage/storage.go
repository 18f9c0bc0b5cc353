package storage

import (
	"context"
	"io"
	"time"
)

// Package storage holds the object-store abstraction used for candidate resume
// files. Implementations rely on streaming I/O only; no local disk.

// PutOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the implementation will buffer/chunk as supported by the backend.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object storage client.
type Storage interface {
	// Put uploads an object under the given key from the provided reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL for downloading the object without
	// credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
