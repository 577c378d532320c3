package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/repo"
)

// EventService implements business logic for Event operations.
// It holds both trips and events repos because creating an event requires
// verifying the parent trip exists.
type EventService struct {
	trips  repo.TripRepo
	events repo.EventRepo
}

// NewEventService constructs an EventService backed by the provided repos.
func NewEventService(trips repo.TripRepo, events repo.EventRepo) *EventService {
	return &EventService{trips: trips, events: events}
}

// Create validates the event, verifies the parent trip exists, then persists.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the parent trip does not exist.
func (s *EventService) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	if _, err := s.trips.GetByID(ctx, event.TripID); err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	if err := validateEvent(event); err != nil {
		return domain.Event{}, err
	}
	result, err := s.events.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single event by ID, scoped to the given tripID.
// Returns domain.ErrNotFound if no event with that ID exists under that trip.
func (s *EventService) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	result, err := s.events.GetByID(ctx, tripID, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all events for a trip ordered by start_time ascending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EventService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	events, err := s.events.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.EventService.ListByTripID: %w", err)
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

// Update validates and persists changes to an existing event.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// event does not exist under the given trip.
func (s *EventService) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := validateEvent(event); err != nil {
		return domain.Event{}, err
	}
	result, err := s.events.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("service.EventService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an event by ID, scoped to the given tripID.
// Returns domain.ErrNotFound if the event does not exist under the given trip.
func (s *EventService) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	if err := s.events.Delete(ctx, tripID, eventID); err != nil {
		return fmt.Errorf("service.EventService.Delete: %w", err)
	}
	return nil
}

// validateEvent enforces business rules common to both Create and Update.
//   - Type must be one of the known variants.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - EndTime must not be before StartTime. For hotels that means check-out
//     not before check-in, for car rentals return not before pickup.
//   - The details payload must match the declared type. A missing payload
//     is allowed — the itinerary degrades gracefully — but a payload under
//     the wrong tag is always a client error.
func validateEvent(event domain.Event) error {
	if !event.Type.Valid() {
		return fmt.Errorf("%w: unknown event type %q", domain.ErrValidation, event.Type)
	}
	if strings.TrimSpace(event.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if event.EndTime.Before(event.StartTime) {
		return fmt.Errorf("%w: end_time must not be before start_time", domain.ErrValidation)
	}
	if err := validateDetailsTag(event); err != nil {
		return err
	}
	return nil
}

// validateDetailsTag rejects events carrying a variant payload that does
// not match their declared type.
func validateDetailsTag(event domain.Event) error {
	mismatched := ""
	switch {
	case event.Flight != nil && event.Type != domain.EventFlight:
		mismatched = "flight"
	case event.Hotel != nil && event.Type != domain.EventHotel:
		mismatched = "hotel"
	case event.Restaurant != nil && event.Type != domain.EventRestaurant:
		mismatched = "restaurant"
	case event.Activity != nil && event.Type != domain.EventActivity:
		mismatched = "activity"
	case event.CarRental != nil && event.Type != domain.EventCarRental:
		mismatched = "car_rental"
	}
	if mismatched != "" {
		return fmt.Errorf("%w: %s details do not match event type %q", domain.ErrValidation, mismatched, event.Type)
	}
	return nil
}
