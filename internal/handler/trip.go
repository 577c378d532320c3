package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/dates"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// tripRequest is the JSON body for trip create and update.
// Dates arrive as "YYYY-MM-DD" strings, matching how the UI treats trip
// boundaries as calendar dates rather than instants.
type tripRequest struct {
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Cities      []string `json:"cities"`
	Notes       string   `json:"notes"`
}

// handleCreateTrip implements POST /trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := decodeTrip(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// tripListResponse is the paged envelope for GET /trips.
type tripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination pagination    `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// handleListTrips implements GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20,
// max 100).
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))

	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, tripListResponse{
		Data: trips,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// queryInt reads an optional integer query parameter, returning nil when the
// parameter is absent or not a number.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// handleGetTrip implements GET /trips/{tripID}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// handleUpdateTrip implements PUT /trips/{tripID}.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	trip, err := decodeTrip(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteTrip implements DELETE /trips/{tripID}.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeTrip parses and minimally validates a trip request body.
// Business-rule validation happens in the service; this only rejects
// bodies the service could not even represent.
func decodeTrip(r *http.Request) (domain.Trip, error) {
	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Trip{}, errors.New("request body is required and must be valid JSON")
	}

	start, err := dates.ParseDayKey(body.StartDate)
	if err != nil {
		return domain.Trip{}, errors.New("start_date must be formatted YYYY-MM-DD")
	}
	end, err := dates.ParseDayKey(body.EndDate)
	if err != nil {
		return domain.Trip{}, errors.New("end_date must be formatted YYYY-MM-DD")
	}

	return domain.Trip{
		Name:        body.Name,
		Destination: body.Destination,
		StartDate:   start,
		EndDate:     end,
		Cities:      body.Cities,
		Notes:       body.Notes,
	}, nil
}

// pathUUID parses a UUID path parameter, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", name+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
