package api

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/adfharrison1/go-datasets/pkg/domain"
)

// HandleList handles GET /datasets. With ?q= it searches NAME, CATEGORY and
// DESCRIPTION; limit and offset page through the result.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	page, err := parsePageOptions(queryParams.Get("limit"), queryParams.Get("offset"))
	if err != nil {
		log.Printf("ERROR: Invalid pagination: %v", err)
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var records []domain.Record
	if queryParams.Has("q") {
		query := queryParams.Get("q")
		log.Printf("INFO: handleList called with search query '%s'", query)
		records = h.search(query)
	} else {
		log.Printf("INFO: handleList called (no query)")
		records = h.catalog.ListAll()
	}

	result := page.Apply(records)
	log.Printf("INFO: Returning %d of %d datasets", len(result.Records), result.Total)
	writeJSON(w, result)
}

// search memoizes catalog searches by normalized query
func (h *Handler) search(query string) []domain.Record {
	key := strings.ToLower(strings.TrimSpace(query))
	if cached, ok := h.searchCache.Get(key); ok {
		return cached
	}
	records := h.catalog.Search(query)
	h.searchCache.Put(key, records)
	return records
}

func parsePageOptions(limit, offset string) (*domain.PageOptions, error) {
	page := domain.DefaultPageOptions()

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return nil, err
		}
		page.Limit = n
	}
	if offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil {
			return nil, err
		}
		page.Offset = n
	}

	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}
