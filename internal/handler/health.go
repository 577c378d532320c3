package handler

import "net/http"

// handleHealth implements GET /healthz.
// It reports process liveness only and does not touch the database.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
