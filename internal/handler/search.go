package handler

import (
	"net/http"
	"strings"
)

// handleLocationSearch implements GET /locations/search.
// Query parameters: q (required free-text query), cities (optional
// comma-separated bias cities). Upstream failures surface as 502 so the
// client can offer manual entry instead.
func (s *Server) handleLocationSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "q is required")
		return
	}

	var cities []string
	if raw := r.URL.Query().Get("cities"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if t := strings.TrimSpace(c); t != "" {
				cities = append(cities, t)
			}
		}
	}

	results, err := s.search.Search(r.Context(), query, cities)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, results)
}
