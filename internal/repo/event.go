package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// EventRepo defines the persistence operations for Events.
// All write and single-read operations are scoped by tripID to enforce ownership.
type EventRepo interface {
	// Create inserts a new event and returns the persisted record.
	Create(ctx context.Context, event domain.Event) (domain.Event, error)

	// GetByID retrieves a single event by its UUID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no event with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error)

	// ListByTripID returns all events for a trip ordered by start_time
	// ascending, sort_order breaking ties.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error)

	// Update overwrites the mutable fields of an event, scoped to the given
	// tripID. Returns domain.ErrNotFound if it does not exist under that trip.
	Update(ctx context.Context, event domain.Event) (domain.Event, error)

	// Delete removes an event by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if it does not exist under that trip.
	Delete(ctx context.Context, tripID, eventID uuid.UUID) error
}

// pgEventRepo is the Postgres implementation of EventRepo.
// The variant payload lives in a single jsonb column; the common columns
// stay relational so list ordering and day grouping never touch JSON.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

const eventColumns = `id, trip_id, type, title, start_time, end_time, notes,
	location_name, latitude, longitude, sort_order, details, created_at, updated_at`

func (r *pgEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	const q = `
		INSERT INTO events (trip_id, type, title, start_time, end_time, notes,
			location_name, latitude, longitude, sort_order, details)
		VALUES (@trip_id, @type, @title, @start_time, @end_time, @notes,
			@location_name, @latitude, @longitude, @sort_order, @details)
		RETURNING ` + eventColumns

	args, err := eventArgs(event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgEventRepo) GetByID(ctx context.Context, tripID, eventID uuid.UUID) (domain.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": eventID, "trip_id": tripID})
	result, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgEventRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events
		WHERE trip_id = @trip_id
		ORDER BY start_time ASC, sort_order ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EventRepo.ListByTripID: scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByTripID: rows: %w", err)
	}

	return events, nil
}

func (r *pgEventRepo) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	const q = `
		UPDATE events
		SET type          = @type,
		    title         = @title,
		    start_time    = @start_time,
		    end_time      = @end_time,
		    notes         = @notes,
		    location_name = @location_name,
		    latitude      = @latitude,
		    longitude     = @longitude,
		    sort_order    = @sort_order,
		    details       = @details,
		    updated_at    = now()
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + eventColumns

	args, err := eventArgs(event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Update: %w", err)
	}
	args["id"] = event.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, fmt.Errorf("repo.EventRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgEventRepo) Delete(ctx context.Context, tripID, eventID uuid.UUID) error {
	const q = `DELETE FROM events WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": eventID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.EventRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.EventRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// eventDetails is the shape stored in the jsonb details column: the variant
// payloads of domain.Event without the common columns.
type eventDetails struct {
	Flight     *domain.FlightDetails     `json:"flight,omitempty"`
	Hotel      *domain.HotelDetails      `json:"hotel,omitempty"`
	Restaurant *domain.RestaurantDetails `json:"restaurant,omitempty"`
	Activity   *domain.ActivityDetails   `json:"activity,omitempty"`
	CarRental  *domain.CarRentalDetails  `json:"car_rental,omitempty"`
}

func eventArgs(event domain.Event) (pgx.NamedArgs, error) {
	details, err := json.Marshal(eventDetails{
		Flight:     event.Flight,
		Hotel:      event.Hotel,
		Restaurant: event.Restaurant,
		Activity:   event.Activity,
		CarRental:  event.CarRental,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal details: %w", err)
	}

	var lat, lng *float64
	if event.Coordinates != nil {
		lat = &event.Coordinates.Lat
		lng = &event.Coordinates.Lng
	}

	return pgx.NamedArgs{
		"trip_id":       event.TripID,
		"type":          string(event.Type),
		"title":         event.Title,
		"start_time":    event.StartTime,
		"end_time":      event.EndTime,
		"notes":         event.Notes,
		"location_name": event.LocationName,
		"latitude":      lat,
		"longitude":     lng,
		"sort_order":    event.SortOrder,
		"details":       details,
	}, nil
}

// scanEvent maps a single database row into a domain.Event, unpacking the
// jsonb details column back into the matching variant pointer.
func scanEvent(s scanner) (domain.Event, error) {
	var (
		e       domain.Event
		id      pgtype.UUID
		tripID  pgtype.UUID
		typ     string
		lat     *float64
		lng     *float64
		details []byte
	)

	err := s.Scan(&id, &tripID, &typ, &e.Title, &e.StartTime, &e.EndTime, &e.Notes,
		&e.LocationName, &lat, &lng, &e.SortOrder, &details, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, domain.ErrNotFound
		}
		return domain.Event{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	e.Type = domain.EventType(typ)
	if lat != nil && lng != nil {
		e.Coordinates = &domain.LatLng{Lat: *lat, Lng: *lng}
	}

	var d eventDetails
	if len(details) > 0 {
		if err := json.Unmarshal(details, &d); err != nil {
			return domain.Event{}, fmt.Errorf("unmarshal details: %w", err)
		}
	}
	e.Flight = d.Flight
	e.Hotel = d.Hotel
	e.Restaurant = d.Restaurant
	e.Activity = d.Activity
	e.CarRental = d.CarRental

	return e, nil
}
