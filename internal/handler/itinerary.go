package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// handleItinerary implements GET /trips/{tripID}/itinerary.
// Optional lat/lng query parameters carry the user's current location; when
// both are present the generated directions links include an origin.
func (s *Server) handleItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}

	current, err := optionalLatLng(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	groups, err := s.itinerary.Assemble(r.Context(), tripID, current)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// optionalLatLng reads lat/lng query params. Both absent means a nil
// location (unknown); one present without the other is a client error.
func optionalLatLng(r *http.Request) (*domain.LatLng, error) {
	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")
	if latStr == "" && lngStr == "" {
		return nil, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, errLatLngPair
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errLatLngPair
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errLatLngPair
	}
	return &domain.LatLng{Lat: lat, Lng: lng}, nil
}

var errLatLngPair = errors.New("lat and lng must both be provided as decimal degrees")
