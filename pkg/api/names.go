package api

import (
	"log"
	"net/http"
)

// HandleNames handles GET /datasets/names and returns the sorted, normalized names
func (h *Handler) HandleNames(w http.ResponseWriter, r *http.Request) {
	names := h.catalog.Names()
	log.Printf("INFO: Returning %d dataset names", len(names))
	writeJSON(w, names)
}
