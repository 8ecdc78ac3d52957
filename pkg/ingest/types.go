package ingest

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is the domain type for the declared kind of a content item.
type ContentType string

// Content type constants (typed).
const (
	ContentTypePDFFile ContentType = "pdf-file"
	ContentTypePDFLink ContentType = "pdf-link"
	ContentTypeYouTube ContentType = "youtube"
	ContentTypeWebsite ContentType = "website"
)

// IsValid reports whether ct is one of the known content types.
func (ct ContentType) IsValid() bool {
	switch ct {
	case ContentTypePDFFile, ContentTypePDFLink, ContentTypeYouTube, ContentTypeWebsite:
		return true
	}
	return false
}

// IsURL reports whether ct is a URL-backed content type accepted by
// SubmitURL (everything except pdf-file).
func (ct ContentType) IsURL() bool {
	switch ct {
	case ContentTypePDFLink, ContentTypeYouTube, ContentTypeWebsite:
		return true
	}
	return false
}

// ContentStatus is the domain type for content lifecycle states.
type ContentStatus string

// Content status constants (typed). Since no processing happens in this
// service, every live record carries StatusReceived.
const (
	StatusReceived ContentStatus = "received"
)

// MaxUploadSize is the upper bound for uploaded PDF files (50MB).
const MaxUploadSize int64 = 50 * 1024 * 1024

// ContentRecord is the stored metadata describing a single content item.
//
// For pdf-file records, Source holds the object key of the stored file and
// the file is guaranteed to be present in the blob store until the record
// is deleted. For URL kinds, Source holds the submitted URL verbatim.
type ContentRecord struct {
	ID          uuid.UUID     `json:"content_id"`
	ContentType ContentType   `json:"content_type"`
	Source      string        `json:"source"`
	Title       string        `json:"title,omitempty"`
	FileSize    int64         `json:"file_size,omitempty"`
	Status      ContentStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ObjectMeta describes a stored blob.
type ObjectMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
}
