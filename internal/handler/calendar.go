package handler

import (
	"net/http"
	"strings"
)

// handleCalendarExport implements GET /trips/{tripID}/calendar.ics.
// The response is a downloadable text/calendar document.
func (s *Server) handleCalendarExport(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	doc, tripName, err := s.calendar.Export(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(tripName)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// exportFilename derives a safe .ics filename from the trip name.
func exportFilename(tripName string) string {
	name := strings.TrimSpace(tripName)
	if name == "" {
		name = "trip"
	}
	// Strip characters that break Content-Disposition or filesystems.
	replacer := strings.NewReplacer(`"`, "", "/", "-", `\`, "-", "\n", " ", "\r", " ")
	return replacer.Replace(name) + ".ics"
}
