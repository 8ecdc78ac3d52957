package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/vibelearn/content-ingest/pkg/ingest"
)

// Repository implements ingest.Repository using in-memory storage.
//
// The record store is guarded by a single RWMutex: readers share, writers
// are exclusive. State is empty on startup and discarded on shutdown.
type Repository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*ingest.ContentRecord
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		records: make(map[uuid.UUID]*ingest.ContentRecord),
	}
}

func (r *Repository) CreateContent(ctx context.Context, record *ingest.ContentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to avoid external modifications
	recordCopy := *record
	r.records[record.ID] = &recordCopy

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id uuid.UUID) (*ingest.ContentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, ingest.ErrContentNotFound
	}

	// Return a copy to prevent external modifications
	recordCopy := *record
	return &recordCopy, nil
}

func (r *Repository) DeleteContent(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return ingest.ErrContentNotFound
	}

	delete(r.records, id)
	return nil
}
