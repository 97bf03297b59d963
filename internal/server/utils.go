package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/plshi/imagesearch/internal/imaging"
)

// formFile reads a single multipart file field fully into memory.
func (h *Handlers) formFile(r *http.Request, field string) ([]byte, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, nil, fmt.Errorf("missing form file %q: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("read form file %q: %w", field, err)
	}
	return data, header, nil
}

// formFiles returns the headers of a repeated multipart file field.
func (h *Handlers) formFiles(r *http.Request, field string) ([]*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, fmt.Errorf("missing form files %q", field)
	}
	return r.MultipartForm.File[field], nil
}

func readFileHeader(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file %q: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file %q: %w", header.Filename, err)
	}
	return data, nil
}

// contentTypeOf prefers the client-declared type and falls back to the name.
func contentTypeOf(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return imaging.MIMEFromFilename(header.Filename)
}

// readLocalImage loads an image from a path on the server's filesystem.
// Some callers hand the service a path instead of the bytes.
func readLocalImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("read local file %s: %w", path, err)
	}
	return data, nil
}
