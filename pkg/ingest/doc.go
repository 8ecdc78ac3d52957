// Package ingest is a receive-only ingestion library for learning content.
//
// It accepts references to learning material (PDF uploads, PDF links,
// YouTube URLs, website URLs), validates their format, assigns identifiers
// and stores the uploaded bytes and record metadata for later retrieval or
// deletion. It performs no content extraction or processing of any kind.
//
// The package is built around three pluggable pieces:
//
//   - Service: the operations exposed over HTTP (upload, submit, get,
//     open, delete), constructed with functional options.
//   - Repository: persistence for ContentRecord metadata (in-memory or
//     PostgreSQL implementations under repo/).
//   - BlobStore: storage for uploaded file bytes (memory, filesystem or
//     S3 implementations under storage/).
//
// Basic usage:
//
//	svc, err := ingest.New(
//	    ingest.WithRepository(memory.New()),
//	    ingest.WithBlobStore("fs", fsStore),
//	)
package ingest
