package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// handleCreateEvent implements POST /trips/{tripID}/events.
// The body is the domain event shape: common fields plus exactly one
// variant payload matching "type".
func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	event, err := decodeEvent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	event.TripID = tripID

	created, err := s.events.Create(r.Context(), event)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleListEvents implements GET /trips/{tripID}/events.
func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	events, err := s.events.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// handleGetEvent implements GET /trips/{tripID}/events/{eventID}.
func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := s.events.GetByID(r.Context(), tripID, eventID)
	if err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// handleUpdateEvent implements PUT /trips/{tripID}/events/{eventID}.
func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := decodeEvent(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	event.ID = eventID
	event.TripID = tripID

	updated, err := s.events.Update(r.Context(), event)
	if err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handleDeleteEvent implements DELETE /trips/{tripID}/events/{eventID}.
func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(w, r, "tripID")
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}
	if err := s.events.Delete(r.Context(), tripID, eventID); err != nil {
		writeServiceError(w, err, "event not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeEvent parses an event request body. IDs and timestamps set by the
// server are ignored if the client sends them.
func decodeEvent(r *http.Request) (domain.Event, error) {
	var event domain.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		return domain.Event{}, errors.New("request body is required and must be valid JSON")
	}
	if event.StartTime.IsZero() || event.EndTime.IsZero() {
		return domain.Event{}, errors.New("start_time and end_time are required")
	}
	return event, nil
}
