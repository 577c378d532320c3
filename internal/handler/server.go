// Package handler implements the HTTP handlers for the travel planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, event.go, itinerary.go, ...) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/itinerary"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/places"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/weather"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventServicer defines the business operations the event handlers depend on.
type EventServicer interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, tripID, eventID uuid.UUID) error
}

// ItineraryServicer builds the day-grouped view for a trip.
type ItineraryServicer interface {
	Assemble(ctx context.Context, tripID uuid.UUID, currentLocation *domain.LatLng) ([]itinerary.DayGroup, error)
}

// CalendarServicer renders a trip as an ICS document.
type CalendarServicer interface {
	Export(ctx context.Context, tripID uuid.UUID) (document, tripName string, err error)
}

// SearchServicer runs biased location searches.
type SearchServicer interface {
	Search(ctx context.Context, query string, biasCities []string) ([]places.Result, error)
}

// ForecastServicer serves day forecasts for a coordinate.
// *weather.Cache satisfies this directly.
type ForecastServicer interface {
	Forecast(ctx context.Context, coord domain.LatLng, days []time.Time) (map[string]weather.Forecast, error)
}

// Server holds the dependencies shared by all handlers.
type Server struct {
	trips     TripServicer
	events    EventServicer
	itinerary ItineraryServicer
	calendar  CalendarServicer
	search    SearchServicer
	forecast  ForecastServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, events EventServicer, itin ItineraryServicer,
	calendar CalendarServicer, search SearchServicer, forecast ForecastServicer) *Server {
	return &Server{
		trips:     trips,
		events:    events,
		itinerary: itin,
		calendar:  calendar,
		search:    search,
		forecast:  forecast,
	}
}

// Routes returns the chi router with every API endpoint registered.
// Mount it at / in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.handleCreateTrip)
		r.Get("/", s.handleListTrips)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Put("/", s.handleUpdateTrip)
			r.Delete("/", s.handleDeleteTrip)
			r.Get("/itinerary", s.handleItinerary)
			r.Get("/calendar.ics", s.handleCalendarExport)

			r.Route("/events", func(r chi.Router) {
				r.Post("/", s.handleCreateEvent)
				r.Get("/", s.handleListEvents)
				r.Get("/{eventID}", s.handleGetEvent)
				r.Put("/{eventID}", s.handleUpdateEvent)
				r.Delete("/{eventID}", s.handleDeleteEvent)
			})
		})
	})

	r.Get("/locations/search", s.handleLocationSearch)
	r.Get("/weather", s.handleWeather)

	return r
}
