package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibelearn/content-ingest/pkg/ingest"
)

func newRecord() *ingest.ContentRecord {
	return &ingest.ContentRecord{
		ID:          uuid.New(),
		ContentType: ingest.ContentTypeWebsite,
		Source:      "https://example.com",
		Title:       "Website Content",
		Status:      ingest.StatusReceived,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := New()
	ctx := context.Background()

	record := newRecord()
	require.NoError(t, repo.CreateContent(ctx, record))

	got, err := repo.GetContent(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.ContentType, got.ContentType)
	assert.Equal(t, record.Source, got.Source)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := New()
	ctx := context.Background()

	record := newRecord()
	require.NoError(t, repo.CreateContent(ctx, record))

	got, err := repo.GetContent(ctx, record.ID)
	require.NoError(t, err)
	got.Source = "mutated"

	again, err := repo.GetContent(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", again.Source)
}

func TestGetUnknownID(t *testing.T) {
	repo := New()

	_, err := repo.GetContent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ingest.ErrContentNotFound)
}

func TestDelete(t *testing.T) {
	repo := New()
	ctx := context.Background()

	record := newRecord()
	require.NoError(t, repo.CreateContent(ctx, record))
	require.NoError(t, repo.DeleteContent(ctx, record.ID))

	_, err := repo.GetContent(ctx, record.ID)
	assert.ErrorIs(t, err, ingest.ErrContentNotFound)

	assert.ErrorIs(t, repo.DeleteContent(ctx, record.ID), ingest.ErrContentNotFound)
}

func TestConcurrentAccess(t *testing.T) {
	repo := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record := newRecord()
			if err := repo.CreateContent(ctx, record); err != nil {
				t.Error(err)
				return
			}
			if _, err := repo.GetContent(ctx, record.ID); err != nil {
				t.Error(err)
				return
			}
			if err := repo.DeleteContent(ctx, record.ID); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
}
