package ingest

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Service defines the main interface for the content-ingest library
type Service interface {
	// UploadPDF validates and stores an uploaded PDF file and its record
	UploadPDF(ctx context.Context, req UploadPDFRequest) (*ContentRecord, error)

	// SubmitURL validates and records a content URL (pdf-link, youtube, website)
	SubmitURL(ctx context.Context, req SubmitURLRequest) (*ContentRecord, error)

	// GetContent returns a record by id
	GetContent(ctx context.Context, id uuid.UUID) (*ContentRecord, error)

	// OpenFile opens the stored file for a pdf-file record
	OpenFile(ctx context.Context, id uuid.UUID) (io.ReadCloser, *ContentRecord, error)

	// DeleteContent removes a record and, for pdf-file records, its stored file
	DeleteContent(ctx context.Context, id uuid.UUID) error
}
