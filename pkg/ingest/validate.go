package ingest

import (
	"net/url"
	"path"
	"strings"
)

// ValidatePDFUpload checks the declared type and size of an uploaded file.
// Returns ErrUnsupportedFileType for non-PDF filenames and ErrFileTooLarge
// when size exceeds MaxUploadSize. Format-only: the file content is not
// inspected.
func ValidatePDFUpload(fileName string, size int64) error {
	if !strings.EqualFold(path.Ext(fileName), ".pdf") {
		return ErrUnsupportedFileType
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// ValidateURL checks that raw is a well-formed absolute URL with a scheme
// and host. No network fetch is performed.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// ValidateURLContentType checks that ct is one of the URL-backed content
// types accepted by SubmitURL.
func ValidateURLContentType(ct ContentType) error {
	if !ct.IsURL() {
		return ErrUnsupportedContentType
	}
	return nil
}
