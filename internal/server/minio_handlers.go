package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plshi/imagesearch/internal/imaging"
)

type objectUploadResult struct {
	Filename   string `json:"filename"`
	Status     string `json:"status"`
	ObjectName string `json:"object_name,omitempty"`
	URL        string `json:"url"`
	Size       int    `json:"size,omitempty"`
	Error      string `json:"error,omitempty"`
}

// APIUploadToMinio stores a multipart batch of files in object storage and
// returns their access URLs. Objects are keyed
// <folder>/<yyyy-mm-dd>/<uuid8>-<sanitized name> so listings group by day and
// re-uploads of the same name never collide.
func (h *Handlers) APIUploadToMinio(w http.ResponseWriter, r *http.Request) {
	files, err := h.formFiles(r, "files")
	if err != nil {
		writeFail(w, err)
		return
	}
	folderPath := sanitizeFolderPath(r.FormValue("folder"))
	dateFolder := time.Now().Format("2006-01-02")

	results := make([]objectUploadResult, 0, len(files))
	for _, header := range files {
		if !imaging.ExtensionAllowed(header.Filename) {
			results = append(results, objectUploadResult{
				Filename: header.Filename,
				Status:   "fail",
				Error:    unsupportedTypeMessage(header.Filename),
			})
			continue
		}

		data, err := readFileHeader(header)
		if err != nil {
			results = append(results, objectUploadResult{
				Filename: header.Filename,
				Status:   "fail",
				Error:    err.Error(),
			})
			continue
		}

		objectName := fmt.Sprintf("%s/%s/%s-%s",
			folderPath, dateFolder, uuid.NewString()[:8], imaging.SanitizeFileName(header.Filename))

		url, err := h.objects.Put(r.Context(), objectName, data, contentTypeOf(header))
		if err != nil {
			h.log.Error("object upload failed", err, map[string]interface{}{"filename": header.Filename})
			results = append(results, objectUploadResult{
				Filename: header.Filename,
				Status:   "fail",
				Error:    err.Error(),
			})
			continue
		}

		h.log.Info("object uploaded", nil, map[string]interface{}{
			"filename": header.Filename,
			"object":   objectName,
		})
		results = append(results, objectUploadResult{
			Filename:   header.Filename,
			Status:     "success",
			ObjectName: objectName,
			URL:        url,
			Size:       len(data),
		})
	}

	writeSuccess(w, results)
}

// sanitizeFolderPath cleans every segment of a client-supplied folder path.
func sanitizeFolderPath(folder string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return "uploads"
	}
	parts := strings.Split(folder, "/")
	for i, part := range parts {
		parts[i] = imaging.SanitizeFolderName(part)
	}
	return strings.Join(parts, "/")
}
