package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/itinerary"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/repo"
)

// ItineraryService builds the day-grouped itinerary view for a trip.
// It is a thin orchestration over the pure assembler: fetch the current
// event set, assemble, return. Nothing derived is ever persisted.
type ItineraryService struct {
	trips  repo.TripRepo
	events repo.EventRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, events repo.EventRepo) *ItineraryService {
	return &ItineraryService{trips: trips, events: events}
}

// Assemble returns the ordered day groups for a trip. currentLocation is
// the user's position if known, nil otherwise.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ItineraryService) Assemble(ctx context.Context, tripID uuid.UUID, currentLocation *domain.LatLng) ([]itinerary.DayGroup, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Assemble: %w", err)
	}
	events, err := s.events.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Assemble: %w", err)
	}
	return itinerary.Assemble(events, currentLocation), nil
}
