package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/plshi/imagesearch/internal/imaging"
	"github.com/plshi/imagesearch/internal/service"
)

type uploadRequest struct {
	FileName  string `json:"file_name"`
	FileData  string `json:"file_data"` // path on the server's filesystem
	FileClass string `json:"file_class"`
}

type fileUploadStatus struct {
	Filename   string `json:"filename"`
	FileStatus string `json:"filestatus"`
}

// UploadImage vectorizes and stores one image referenced by local path.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, fmt.Errorf("decode request body: %w", err))
		return
	}
	if !imaging.ExtensionAllowed(req.FileName) {
		writeFailMsg(w, unsupportedTypeMessage(req.FileName))
		return
	}

	data, err := readLocalImage(req.FileData)
	if err != nil {
		writeFail(w, err)
		return
	}

	result, err := h.images.Insert(r.Context(), service.ImageUpload{
		FileName:    req.FileName,
		Data:        data,
		ContentType: imaging.MIMEFromFilename(req.FileName),
		Class:       req.FileClass,
	})
	if err != nil {
		writeFail(w, err)
		return
	}
	writeSuccess(w, result)
}

// APIUploadImage vectorizes and stores a multipart batch of images, each
// paired with a category. Files are embedded concurrently; one bad file does
// not abort the batch.
func (h *Handlers) APIUploadImage(w http.ResponseWriter, r *http.Request) {
	files, err := h.formFiles(r, "files")
	if err != nil {
		writeFail(w, err)
		return
	}
	categories := r.MultipartForm.Value["categories"]

	// Pair files with categories positionally; extras on either side are
	// ignored, matching the behavior clients already rely on.
	n := len(files)
	if len(categories) < n {
		n = len(categories)
	}

	statuses := make([]fileUploadStatus, n)
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(h.cfg.UploadConcurrency)

	for i := 0; i < n; i++ {
		i := i
		header, category := files[i], categories[i]
		statuses[i] = fileUploadStatus{Filename: header.Filename, FileStatus: "fail"}

		if !imaging.ExtensionAllowed(header.Filename) {
			h.log.Warn("skipping unsupported upload", nil, map[string]interface{}{"filename": header.Filename})
			continue
		}

		g.Go(func() error {
			data, err := readFileHeader(header)
			if err != nil {
				h.log.Error("reading uploaded file failed", err, map[string]interface{}{"filename": header.Filename})
				return nil
			}
			_, err = h.images.Insert(ctx, service.ImageUpload{
				FileName:    header.Filename,
				Data:        data,
				ContentType: contentTypeOf(header),
				Class:       category,
			})
			if err != nil {
				h.log.Error("inserting uploaded file failed", err, map[string]interface{}{"filename": header.Filename})
				return nil
			}
			statuses[i].FileStatus = "success"
			return nil
		})
	}
	_ = g.Wait()

	writeSuccess(w, statuses)
}

func unsupportedTypeMessage(filename string) string {
	return fmt.Sprintf("unsupported image type for %q, allowed: %v", filename, imaging.AllowedExtensions)
}
