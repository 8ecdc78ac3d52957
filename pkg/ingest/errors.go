package ingest

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrContentNotFound indicates no record exists for the given id
	ErrContentNotFound = errors.New("content not found")

	// ErrObjectNotFound indicates a stored blob was not found
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidURL indicates a submitted URL is not well-formed
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrUnsupportedContentType indicates a content_type outside pdf-link/youtube/website
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrUnsupportedFileType indicates an uploaded file is not a PDF
	ErrUnsupportedFileType = errors.New("only PDF files are allowed")

	// ErrFileTooLarge indicates an uploaded file exceeds MaxUploadSize
	ErrFileTooLarge = errors.New("file size exceeds 50MB limit")

	// ErrNotFile indicates a file operation was requested on a URL-backed record
	ErrNotFile = errors.New("content has no stored file")
)

// ContentError represents an error related to a content operation
type ContentError struct {
	ContentID uuid.UUID
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to a blob storage operation
type StorageError struct {
	Backend string
	Key     string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
