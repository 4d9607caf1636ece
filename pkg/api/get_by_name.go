package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// HandleGetByName handles GET requests to retrieve a dataset by NAME (case-insensitive)
func (h *Handler) HandleGetByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	log.Printf("INFO: handleGetByName called for name '%s'", name)

	rec, err := h.catalog.GetByName(name)
	if err != nil {
		log.Printf("ERROR: Dataset lookup failed: %v", err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, rec)
}
