package ingest

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Repository defines the interface for content record persistence.
// Implementations own the record store; no other component mutates it.
type Repository interface {
	// CreateContent stores a new record
	CreateContent(ctx context.Context, record *ContentRecord) error

	// GetContent returns the record for id, or ErrContentNotFound
	GetContent(ctx context.Context, id uuid.UUID) (*ContentRecord, error)

	// DeleteContent removes the record for id, or ErrContentNotFound
	DeleteContent(ctx context.Context, id uuid.UUID) error
}

// BlobStore defines the interface for uploaded-file storage backends.
type BlobStore interface {
	// Upload writes the reader's bytes under objectKey
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// Download opens the blob stored under objectKey
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes the blob stored under objectKey
	Delete(ctx context.Context, objectKey string) error

	// GetObjectMeta retrieves metadata for a stored blob
	GetObjectMeta(ctx context.Context, objectKey string) (*ObjectMeta, error)
}
