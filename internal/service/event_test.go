package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/repo"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/service"
)

// mockEventRepo is a hand-written test double for repo.EventRepo.
type mockEventRepo struct {
	create       func(ctx context.Context, event domain.Event) (domain.Event, error)
	getByID      func(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)
	update       func(ctx context.Context, event domain.Event) (domain.Event, error)
	delete       func(ctx context.Context, tripID, eventID uuid.UUID) error
}

func (m *mockEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	return m.create(ctx, event)
}
func (m *mockEventRepo) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	return m.getByID(ctx, tripID, eventID)
}
func (m *mockEventRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	return m.update(ctx, event)
}
func (m *mockEventRepo) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	return m.delete(ctx, tripID, eventID)
}

var _ repo.EventRepo = (*mockEventRepo)(nil)

// ---- helpers ---------------------------------------------------------------

// tripExists returns a TripRepo whose GetByID always succeeds.
func tripExists() *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return domain.Trip{ID: id, Name: "Japan 2025"}, nil
		},
	}
}

func echoEventRepo() *mockEventRepo {
	return &mockEventRepo{
		create: func(_ context.Context, e domain.Event) (domain.Event, error) { return e, nil },
		update: func(_ context.Context, e domain.Event) (domain.Event, error) { return e, nil },
	}
}

func validEvent() domain.Event {
	return domain.Event{
		TripID:    uuid.New(),
		Type:      domain.EventActivity,
		Title:     "Ghibli Museum",
		StartTime: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
}

// ---- Create tests ----------------------------------------------------------

func TestEventService_Create_Valid(t *testing.T) {
	svc := service.NewEventService(tripExists(), echoEventRepo())

	got, err := svc.Create(context.Background(), validEvent())

	require.NoError(t, err)
	assert.Equal(t, "Ghibli Museum", got.Title)
}

func TestEventService_Create_ParentTripMissing(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewEventService(trips, echoEventRepo())

	_, err := svc.Create(context.Background(), validEvent())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventService_Create_UnknownType(t *testing.T) {
	svc := service.NewEventService(tripExists(), echoEventRepo())

	event := validEvent()
	event.Type = "cruise"

	_, err := svc.Create(context.Background(), event)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_MissingTitle(t *testing.T) {
	svc := service.NewEventService(tripExists(), echoEventRepo())

	event := validEvent()
	event.Title = " "

	_, err := svc.Create(context.Background(), event)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	svc := service.NewEventService(tripExists(), echoEventRepo())

	event := validEvent()
	event.EndTime = event.StartTime.Add(-time.Hour)

	_, err := svc.Create(context.Background(), event)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_DetailsTagMismatch(t *testing.T) {
	svc := service.NewEventService(tripExists(), echoEventRepo())

	// An activity event carrying a hotel payload is a client error.
	event := validEvent()
	event.Hotel = &domain.HotelDetails{HotelName: "Park Hyatt"}

	_, err := svc.Create(context.Background(), event)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_MissingDetailsAllowed(t *testing.T) {
	svc := service.NewEventService(tripExists(), echoEventRepo())

	// A typed event with no variant payload is accepted; downstream
	// consumers degrade to the common fields.
	event := validEvent()
	event.Type = domain.EventFlight
	event.Flight = nil

	_, err := svc.Create(context.Background(), event)

	assert.NoError(t, err)
}

// ---- List tests ------------------------------------------------------------

func TestEventService_ListByTripID_NilBecomesEmptySlice(t *testing.T) {
	events := &mockEventRepo{
		listByTripID: func(_ context.Context, _ uuid.UUID) ([]domain.Event, error) { return nil, nil },
	}
	svc := service.NewEventService(tripExists(), events)

	got, err := svc.ListByTripID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Update tests ----------------------------------------------------------

func TestEventService_Update_Invalid(t *testing.T) {
	svc := service.NewEventService(tripExists(), echoEventRepo())

	event := validEvent()
	event.Title = ""

	_, err := svc.Update(context.Background(), event)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_NotFound(t *testing.T) {
	events := &mockEventRepo{
		update: func(_ context.Context, _ domain.Event) (domain.Event, error) {
			return domain.Event{}, domain.ErrNotFound
		},
	}
	svc := service.NewEventService(tripExists(), events)

	_, err := svc.Update(context.Background(), validEvent())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete tests ----------------------------------------------------------

func TestEventService_Delete_NotFound(t *testing.T) {
	events := &mockEventRepo{
		delete: func(_ context.Context, _, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewEventService(tripExists(), events)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
