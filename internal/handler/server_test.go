package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/handler"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/itinerary"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/places"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/weather"
)

// Test doubles for the Server's collaborators. Each method is a function
// field — set only the ones your test needs; the rest panic on use, which
// catches handlers calling into the wrong service.

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, p)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockEventServicer struct {
	create       func(ctx context.Context, event domain.Event) (domain.Event, error)
	getByID      func(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)
	update       func(ctx context.Context, event domain.Event) (domain.Event, error)
	delete       func(ctx context.Context, tripID, eventID uuid.UUID) error
}

func (m *mockEventServicer) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	return m.create(ctx, e)
}
func (m *mockEventServicer) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	return m.getByID(ctx, tripID, eventID)
}
func (m *mockEventServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockEventServicer) Update(ctx context.Context, e domain.Event) (domain.Event, error) {
	return m.update(ctx, e)
}
func (m *mockEventServicer) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	return m.delete(ctx, tripID, eventID)
}

var _ handler.EventServicer = (*mockEventServicer)(nil)

type mockItineraryServicer struct {
	assemble func(ctx context.Context, tripID uuid.UUID, currentLocation *domain.LatLng) ([]itinerary.DayGroup, error)
}

func (m *mockItineraryServicer) Assemble(ctx context.Context, tripID uuid.UUID, loc *domain.LatLng) ([]itinerary.DayGroup, error) {
	return m.assemble(ctx, tripID, loc)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

type mockCalendarServicer struct {
	export func(ctx context.Context, tripID uuid.UUID) (string, string, error)
}

func (m *mockCalendarServicer) Export(ctx context.Context, tripID uuid.UUID) (string, string, error) {
	return m.export(ctx, tripID)
}

var _ handler.CalendarServicer = (*mockCalendarServicer)(nil)

type mockSearchServicer struct {
	search func(ctx context.Context, query string, biasCities []string) ([]places.Result, error)
}

func (m *mockSearchServicer) Search(ctx context.Context, query string, biasCities []string) ([]places.Result, error) {
	return m.search(ctx, query, biasCities)
}

var _ handler.SearchServicer = (*mockSearchServicer)(nil)

type mockForecastServicer struct {
	forecast func(ctx context.Context, coord domain.LatLng, days []time.Time) (map[string]weather.Forecast, error)
}

func (m *mockForecastServicer) Forecast(ctx context.Context, coord domain.LatLng, days []time.Time) (map[string]weather.Forecast, error) {
	return m.forecast(ctx, coord, days)
}

var _ handler.ForecastServicer = (*mockForecastServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// deps bundles the six collaborators so a test only sets the ones it uses.
type deps struct {
	trips     *mockTripServicer
	events    *mockEventServicer
	itinerary *mockItineraryServicer
	calendar  *mockCalendarServicer
	search    *mockSearchServicer
	forecast  *mockForecastServicer
}

// newHTTPHandler wires a Server with the given mocks into its chi router,
// mirroring how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	if d.trips == nil {
		d.trips = &mockTripServicer{}
	}
	if d.events == nil {
		d.events = &mockEventServicer{}
	}
	if d.itinerary == nil {
		d.itinerary = &mockItineraryServicer{}
	}
	if d.calendar == nil {
		d.calendar = &mockCalendarServicer{}
	}
	if d.search == nil {
		d.search = &mockSearchServicer{}
	}
	if d.forecast == nil {
		d.forecast = &mockForecastServicer{}
	}
	srv := handler.NewServer(d.trips, d.events, d.itinerary, d.calendar, d.search, d.forecast)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
