package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DropCollection tears down a named vector collection. This is the only
// deletion the service offers; there is no per-record removal.
func (h *Handlers) DropCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeFailMsg(w, "collection name is required")
		return
	}

	if err := h.vectors.DropCollection(r.Context(), name); err != nil {
		writeFail(w, err)
		return
	}

	h.log.Info("collection dropped", nil, map[string]interface{}{"collection": name})
	writeSuccess(w, fmt.Sprintf("collection %q dropped", name))
}
