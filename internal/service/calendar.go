package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/ics"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/repo"
)

// CalendarService renders a trip's events as a downloadable ICS document.
type CalendarService struct {
	trips  repo.TripRepo
	events repo.EventRepo
}

// NewCalendarService constructs a CalendarService backed by the provided repos.
func NewCalendarService(trips repo.TripRepo, events repo.EventRepo) *CalendarService {
	return &CalendarService{trips: trips, events: events}
}

// Export returns the ICS document for a trip plus the trip name for the
// download filename.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *CalendarService) Export(ctx context.Context, tripID uuid.UUID) (document, tripName string, err error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return "", "", fmt.Errorf("service.CalendarService.Export: %w", err)
	}
	events, err := s.events.ListByTripID(ctx, tripID)
	if err != nil {
		return "", "", fmt.Errorf("service.CalendarService.Export: %w", err)
	}
	doc, err := ics.Serialize(trip, events)
	if err != nil {
		return "", "", fmt.Errorf("service.CalendarService.Export: %w", err)
	}
	return doc, trip.Name, nil
}
