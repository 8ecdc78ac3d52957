package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Option configures a Service created by New.
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithBlobStore registers a named blob store. The first registered store
// becomes the default unless WithDefaultBlobStore overrides it.
func WithBlobStore(name string, store BlobStore) Option {
	return func(s *service) {
		s.blobStores[name] = store
		if s.defaultStore == "" {
			s.defaultStore = name
		}
	}
}

// WithDefaultBlobStore selects which registered blob store receives uploads.
func WithDefaultBlobStore(name string) Option {
	return func(s *service) {
		s.defaultStore = name
	}
}

// New creates a new Service with the provided options
func New(options ...Option) (Service, error) {
	s := &service{
		blobStores: make(map[string]BlobStore),
	}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if len(s.blobStores) == 0 {
		return nil, fmt.Errorf("at least one blob store is required")
	}
	if _, ok := s.blobStores[s.defaultStore]; !ok {
		return nil, fmt.Errorf("default blob store %q is not registered", s.defaultStore)
	}

	return s, nil
}

type service struct {
	repository   Repository
	blobStores   map[string]BlobStore
	defaultStore string
}

func (s *service) store() BlobStore {
	return s.blobStores[s.defaultStore]
}

func (s *service) UploadPDF(ctx context.Context, req UploadPDFRequest) (*ContentRecord, error) {
	if err := ValidatePDFUpload(req.FileName, req.Size); err != nil {
		return nil, err
	}

	id := uuid.New()
	objectKey := objectKeyFor(id, req.FileName)

	if err := s.store().Upload(ctx, objectKey, req.Reader); err != nil {
		return nil, &StorageError{Backend: s.defaultStore, Key: objectKey, Op: "upload", Err: err}
	}

	record := &ContentRecord{
		ID:          id,
		ContentType: ContentTypePDFFile,
		Source:      objectKey,
		Title:       path.Base(req.FileName),
		FileSize:    req.Size,
		Status:      StatusReceived,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repository.CreateContent(ctx, record); err != nil {
		// The blob must not outlive a failed record write.
		if delErr := s.store().Delete(ctx, objectKey); delErr != nil {
			slog.Error("failed to clean up blob after record write failure",
				"object_key", objectKey, "error", delErr)
		}
		return nil, &ContentError{ContentID: id, Op: "create", Err: err}
	}

	slog.Info("pdf received", "content_id", id, "file_name", record.Title, "file_size", req.Size)
	return record, nil
}

func (s *service) SubmitURL(ctx context.Context, req SubmitURLRequest) (*ContentRecord, error) {
	if err := ValidateURLContentType(req.ContentType); err != nil {
		return nil, err
	}
	if err := ValidateURL(req.URL); err != nil {
		return nil, err
	}

	record := &ContentRecord{
		ID:          uuid.New(),
		ContentType: req.ContentType,
		Source:      req.URL,
		Title:       titleFor(req.ContentType),
		Status:      StatusReceived,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repository.CreateContent(ctx, record); err != nil {
		return nil, &ContentError{ContentID: record.ID, Op: "create", Err: err}
	}

	slog.Info("url received", "content_id", record.ID, "content_type", req.ContentType, "url", req.URL)
	return record, nil
}

func (s *service) GetContent(ctx context.Context, id uuid.UUID) (*ContentRecord, error) {
	return s.repository.GetContent(ctx, id)
}

func (s *service) OpenFile(ctx context.Context, id uuid.UUID) (io.ReadCloser, *ContentRecord, error) {
	record, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if record.ContentType != ContentTypePDFFile {
		return nil, nil, ErrNotFile
	}

	rc, err := s.store().Download(ctx, record.Source)
	if err != nil {
		return nil, nil, &StorageError{Backend: s.defaultStore, Key: record.Source, Op: "download", Err: err}
	}
	return rc, record, nil
}

func (s *service) DeleteContent(ctx context.Context, id uuid.UUID) error {
	record, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return err
	}

	if record.ContentType == ContentTypePDFFile {
		if err := s.store().Delete(ctx, record.Source); err != nil {
			return &StorageError{Backend: s.defaultStore, Key: record.Source, Op: "delete", Err: err}
		}
	}

	if err := s.repository.DeleteContent(ctx, id); err != nil {
		return err
	}

	slog.Info("content deleted", "content_id", id, "content_type", record.ContentType)
	return nil
}

// objectKeyFor derives a collision-free object key from the record id and
// the original filename.
func objectKeyFor(id uuid.UUID, fileName string) string {
	return id.String() + "_" + path.Base(fileName)
}

// titleFor builds the display title for URL submissions, e.g.
// "Youtube Content" or "Pdf-Link Content".
func titleFor(ct ContentType) string {
	parts := strings.Split(string(ct), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		}
	}
	return strings.Join(parts, "-") + " Content"
}
