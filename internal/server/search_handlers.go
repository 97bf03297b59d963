package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/plshi/imagesearch/internal/imaging"
	"github.com/plshi/imagesearch/internal/service"
)

type searchRequest struct {
	FileName  string  `json:"file_name"`
	FileData  string  `json:"file_data"` // path on the server's filesystem
	TopK      int     `json:"top_k"`
	Threshold float32 `json:"threshold"`
}

type fileSearchStatus struct {
	Filename   string              `json:"filename"`
	FileStatus string              `json:"filestatus"`
	FileResult []service.SearchHit `json:"fileresult"`
}

// SearchImage runs a similarity search for one image referenced by local path.
func (h *Handlers) SearchImage(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
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

	hits, err := h.images.Search(r.Context(), service.ImageQuery{
		FileName:       req.FileName,
		Data:           data,
		ContentType:    imaging.MIMEFromFilename(req.FileName),
		TopK:           req.TopK,
		ScoreThreshold: req.Threshold,
	})
	if err != nil {
		writeFail(w, err)
		return
	}
	writeSuccess(w, hits)
}

// APISearchImage runs similarity searches for a multipart batch of images
// with default top-k and threshold. Per-file failures do not abort the batch.
func (h *Handlers) APISearchImage(w http.ResponseWriter, r *http.Request) {
	files, err := h.formFiles(r, "files")
	if err != nil {
		writeFail(w, err)
		return
	}

	statuses := make([]fileSearchStatus, len(files))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(h.cfg.UploadConcurrency)

	for i, header := range files {
		i, header := i, header
		statuses[i] = fileSearchStatus{Filename: header.Filename, FileStatus: "fail", FileResult: []service.SearchHit{}}

		if !imaging.ExtensionAllowed(header.Filename) {
			h.log.Warn("skipping unsupported search upload", nil, map[string]interface{}{"filename": header.Filename})
			continue
		}

		g.Go(func() error {
			data, err := readFileHeader(header)
			if err != nil {
				h.log.Error("reading uploaded file failed", err, map[string]interface{}{"filename": header.Filename})
				return nil
			}
			hits, err := h.images.Search(ctx, service.ImageQuery{
				FileName:    header.Filename,
				Data:        data,
				ContentType: contentTypeOf(header),
			})
			if err != nil {
				h.log.Error("searching uploaded file failed", err, map[string]interface{}{"filename": header.Filename})
				return nil
			}
			statuses[i].FileStatus = "success"
			statuses[i].FileResult = hits
			return nil
		})
	}
	_ = g.Wait()

	writeSuccess(w, statuses)
}
