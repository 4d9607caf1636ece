package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// HandleGet handles GET requests to retrieve a dataset by INDEX
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	index := mux.Vars(r)["index"]

	log.Printf("INFO: handleGet called for index '%s'", index)

	rec, err := h.catalog.Get(index)
	if err != nil {
		log.Printf("ERROR: Dataset lookup failed: %v", err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, rec)
}

// HandleLink handles GET requests for a dataset's MAIN_LINK
func (h *Handler) HandleLink(w http.ResponseWriter, r *http.Request) {
	index := mux.Vars(r)["index"]

	link, err := h.catalog.Link(index)
	if err != nil {
		log.Printf("ERROR: Link lookup failed for index '%s': %v", index, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, map[string]string{"index": index, "link": link})
}

// HandlePretty handles GET requests for a dataset's one-line summary
func (h *Handler) HandlePretty(w http.ResponseWriter, r *http.Request) {
	index := mux.Vars(r)["index"]

	summary, err := h.catalog.Pretty(index)
	if err != nil {
		log.Printf("ERROR: Pretty lookup failed for index '%s': %v", index, err)
		WriteJSONError(w, statusForError(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(summary + "\n"))
}
