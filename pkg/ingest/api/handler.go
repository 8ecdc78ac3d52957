package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/vibelearn/content-ingest/pkg/ingest"
)

// Response is the envelope for every JSON response.
type Response struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Data    *ingest.ContentRecord `json:"data,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// ContentHandler handles HTTP requests for content ingestion
type ContentHandler struct {
	service ingest.Service
}

// NewContentHandler creates a new content handler
func NewContentHandler(service ingest.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Routes returns the routes for the ingestion API
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Root)
	r.Post("/upload-pdf", h.UploadPDF)
	r.Post("/upload-content", h.UploadContent)
	r.Get("/content/{contentID}", h.GetContent)
	r.Delete("/content/{contentID}", h.DeleteContent)
	r.Get("/pdf/{contentID}", h.ServePDF)
	r.Head("/pdf/{contentID}", h.ServePDF)

	return r
}

// Root returns the service banner
func (h *ContentHandler) Root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"message": "Learning Content API is running!"})
}

// UploadPDF accepts a multipart PDF upload in the "file" field
func (h *ContentHandler) UploadPDF(w http.ResponseWriter, r *http.Request) {
	// Bound the request body; the 1MB slack covers multipart framing so a
	// file of exactly MaxUploadSize still parses and oversized files are
	// rejected with the size error rather than a broken read.
	r.Body = http.MaxBytesReader(w, r.Body, ingest.MaxUploadSize+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, r, http.StatusBadRequest, ingest.ErrFileTooLarge.Error())
			return
		}
		writeError(w, r, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	record, err := h.service.UploadPDF(r.Context(), ingest.UploadPDFRequest{
		FileName: header.Filename,
		Size:     header.Size,
		Reader:   file,
	})
	if err != nil {
		slog.Error("pdf upload rejected", "file_name", header.Filename, "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, Response{
		Success: true,
		Message: "PDF received successfully",
		Data:    record,
	})
}

// UploadContent accepts a form-encoded URL submission with fields
// "url" and "content_type"
func (h *ContentHandler) UploadContent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	contentType := ingest.ContentType(r.PostFormValue("content_type"))
	record, err := h.service.SubmitURL(r.Context(), ingest.SubmitURLRequest{
		URL:         r.PostFormValue("url"),
		ContentType: contentType,
	})
	if err != nil {
		slog.Error("url submission rejected", "content_type", contentType, "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, Response{
		Success: true,
		Message: fmt.Sprintf("%s received successfully", record.Title),
		Data:    record,
	})
}

// GetContent returns a content record by id
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contentID(w, r)
	if !ok {
		return
	}

	record, err := h.service.GetContent(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, Response{Success: true, Data: record})
}

// DeleteContent removes a record and its stored file if present
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contentID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteContent(r.Context(), id); err != nil {
		slog.Error("delete failed", "content_id", id, "error", err)
		writeServiceError(w, r, err)
		return
	}

	render.JSON(w, r, Response{Success: true, Message: "Content deleted successfully"})
}

// ServePDF streams the stored PDF for a pdf-file record
func (h *ContentHandler) ServePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contentID(w, r)
	if !ok {
		return
	}

	rc, record, err := h.service.OpenFile(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", record.Title))
	if record.FileSize > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(record.FileSize, 10))
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	if _, err := io.Copy(w, rc); err != nil {
		slog.Error("failed streaming pdf", "content_id", id, "error", err)
	}
}

// contentID parses the {contentID} route parameter. An unparseable id can
// never name a record, so it reports not-found rather than bad-request.
func (h *ContentHandler) contentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "contentID"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, "Content not found")
		return uuid.Nil, false
	}
	return id, true
}

// writeServiceError translates domain errors into HTTP responses
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ingest.ErrContentNotFound), errors.Is(err, ingest.ErrObjectNotFound):
		writeError(w, r, http.StatusNotFound, "Content not found")
	case errors.Is(err, ingest.ErrInvalidURL),
		errors.Is(err, ingest.ErrUnsupportedContentType),
		errors.Is(err, ingest.ErrUnsupportedFileType),
		errors.Is(err, ingest.ErrFileTooLarge),
		errors.Is(err, ingest.ErrNotFile):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		writeError(w, r, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, Response{Success: false, Error: message})
}
