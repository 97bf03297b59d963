package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/plshi/imagesearch/internal/imaging"
	"github.com/plshi/imagesearch/internal/service"
)

type compareByLocalURLRequest struct {
	Image1LocalURL   string `json:"image1_local_url"`
	Image2LocalURL   string `json:"image2_local_url"`
	SceneDescription string `json:"scene_description"`
}

// CompareImages judges whether two uploaded images show the same object,
// guided by a scene description form field.
func (h *Handlers) CompareImages(w http.ResponseWriter, r *http.Request) {
	image1, header1, err := h.formFile(r, "image1")
	if err != nil {
		writeFail(w, err)
		return
	}
	image2, header2, err := h.formFile(r, "image2")
	if err != nil {
		writeFail(w, err)
		return
	}
	scene := r.FormValue("scene_description")

	if !imaging.ExtensionAllowed(header1.Filename) {
		writeFailMsg(w, unsupportedTypeMessage(header1.Filename))
		return
	}
	if !imaging.ExtensionAllowed(header2.Filename) {
		writeFailMsg(w, unsupportedTypeMessage(header2.Filename))
		return
	}

	result, err := h.images.Compare(r.Context(), service.CompareInput{
		Image1Data:       image1,
		Image1Name:       header1.Filename,
		Image1Type:       contentTypeOf(header1),
		Image2Data:       image2,
		Image2Name:       header2.Filename,
		Image2Type:       contentTypeOf(header2),
		SceneDescription: scene,
	})
	if err != nil {
		writeFail(w, err)
		return
	}
	writeSuccess(w, result)
}

// CompareImagesByLocalURL is the local-path variant of CompareImages: both
// images are read from the server's filesystem.
func (h *Handlers) CompareImagesByLocalURL(w http.ResponseWriter, r *http.Request) {
	var req compareByLocalURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFail(w, fmt.Errorf("decode request body: %w", err))
		return
	}

	image1, err := readLocalImage(req.Image1LocalURL)
	if err != nil {
		writeFail(w, err)
		return
	}
	image2, err := readLocalImage(req.Image2LocalURL)
	if err != nil {
		writeFail(w, err)
		return
	}

	result, err := h.images.Compare(r.Context(), service.CompareInput{
		Image1Data:       image1,
		Image1Name:       req.Image1LocalURL,
		Image1Type:       imaging.MIMEFromFilename(req.Image1LocalURL),
		Image2Data:       image2,
		Image2Name:       req.Image2LocalURL,
		Image2Type:       imaging.MIMEFromFilename(req.Image2LocalURL),
		SceneDescription: req.SceneDescription,
	})
	if err != nil {
		writeFail(w, err)
		return
	}
	writeSuccess(w, result)
}
