package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")

	// Listing and search (?q=)
	router.HandleFunc("/datasets", h.HandleList).Methods("GET")
	router.HandleFunc("/datasets/names", h.HandleNames).Methods("GET")
	router.HandleFunc("/datasets/by-name/{name}", h.HandleGetByName).Methods("GET")

	// Record operations (by INDEX)
	router.HandleFunc("/datasets/{index}", h.HandleGet).Methods("GET")
	router.HandleFunc("/datasets/{index}/link", h.HandleLink).Methods("GET")
	router.HandleFunc("/datasets/{index}/pretty", h.HandlePretty).Methods("GET")
}
