package ingest

import "io"

// Request DTOs

// UploadPDFRequest contains parameters for ingesting an uploaded PDF file.
type UploadPDFRequest struct {
	FileName string
	Size     int64
	Reader   io.Reader
}

// SubmitURLRequest contains parameters for ingesting a content URL.
type SubmitURLRequest struct {
	URL         string
	ContentType ContentType
}
