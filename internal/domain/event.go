package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType discriminates the closed set of event variants.
// Adding a new variant means: a new constant here, a details struct below,
// and one row in each of the geo extraction and ics description tables.
type EventType string

const (
	EventFlight     EventType = "flight"
	EventHotel      EventType = "hotel"
	EventRestaurant EventType = "restaurant"
	EventActivity   EventType = "activity"
	EventCarRental  EventType = "car_rental"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventFlight, EventHotel, EventRestaurant, EventActivity, EventCarRental:
		return true
	}
	return false
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event is a tagged union over the five event variants. Exactly one of the
// details pointers is non-nil, and it matches Type. The union is modelled as
// one struct rather than an interface so events survive a JSON/DB round trip
// without a registry of concrete types.
//
// StartTime and EndTime carry variant-specific meaning: for hotels they are
// check-in and check-out, for car rentals pickup and return. The invariant
// StartTime <= EndTime holds for every variant.
type Event struct {
	ID           uuid.UUID `json:"id"`
	TripID       uuid.UUID `json:"trip_id"`
	Type         EventType `json:"type"`
	Title        string    `json:"title"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Notes        string    `json:"notes,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
	Coordinates  *LatLng   `json:"coordinates,omitempty"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Flight     *FlightDetails     `json:"flight,omitempty"`
	Hotel      *HotelDetails      `json:"hotel,omitempty"`
	Restaurant *RestaurantDetails `json:"restaurant,omitempty"`
	Activity   *ActivityDetails   `json:"activity,omitempty"`
	CarRental  *CarRentalDetails  `json:"car_rental,omitempty"`
}

// AirportInfo describes one end of a flight leg.
type AirportInfo struct {
	Code        string  `json:"code,omitempty"` // IATA, e.g. "SFO"
	Name        string  `json:"name,omitempty"`
	Terminal    string  `json:"terminal,omitempty"`
	Gate        string  `json:"gate,omitempty"`
	Coordinates *LatLng `json:"coordinates,omitempty"`
}

// FlightDetails holds the flight-specific fields of an Event.
type FlightDetails struct {
	FlightNumber    string      `json:"flight_number,omitempty"`
	Airline         string      `json:"airline,omitempty"`
	AirlineCode     string      `json:"airline_code,omitempty"` // IATA, e.g. "UA"
	Departure       AirportInfo `json:"departure"`
	Arrival         AirportInfo `json:"arrival"`
	Status          string      `json:"status,omitempty"`
	StatusUpdatedAt *time.Time  `json:"status_updated_at,omitempty"`
}

// HotelDetails holds the hotel-specific fields of an Event.
// Check-in and check-out instants are the Event's StartTime and EndTime.
type HotelDetails struct {
	HotelName          string  `json:"hotel_name,omitempty"`
	Address            string  `json:"address,omitempty"`
	Coordinates        *LatLng `json:"coordinates,omitempty"`
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
}

// RestaurantDetails holds the restaurant-specific fields of an Event.
// The reservation instant is the Event's StartTime.
type RestaurantDetails struct {
	Name               string  `json:"name,omitempty"`
	Cuisine            string  `json:"cuisine,omitempty"`
	PartySize          int     `json:"party_size,omitempty"`
	Address            string  `json:"address,omitempty"`
	Coordinates        *LatLng `json:"coordinates,omitempty"`
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
}

// ActivityDetails holds the activity-specific fields of an Event.
type ActivityDetails struct {
	LocationName string  `json:"location_name,omitempty"`
	Description  string  `json:"description,omitempty"`
	Coordinates  *LatLng `json:"coordinates,omitempty"`
}

// CarRentalDetails holds the car-rental-specific fields of an Event.
// Pickup and return instants are the Event's StartTime and EndTime.
// HasRental is false when the user recorded that no car was rented for the
// trip segment; such events carry empty locations.
type CarRentalDetails struct {
	HasRental          bool    `json:"has_rental"`
	Company            string  `json:"company,omitempty"`
	PickupLocation     string  `json:"pickup_location,omitempty"` // free text or airport code
	ReturnLocation     string  `json:"return_location,omitempty"`
	PickupCoordinates  *LatLng `json:"pickup_coordinates,omitempty"`
	ReturnCoordinates  *LatLng `json:"return_coordinates,omitempty"`
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
}

// Details returns the variant payload matching Type, or nil when the event
// is malformed (no payload, or a payload under the wrong tag). Callers must
// treat nil as "degrade to base fields", never as a fatal condition.
func (e Event) Details() any {
	switch e.Type {
	case EventFlight:
		if e.Flight != nil {
			return e.Flight
		}
	case EventHotel:
		if e.Hotel != nil {
			return e.Hotel
		}
	case EventRestaurant:
		if e.Restaurant != nil {
			return e.Restaurant
		}
	case EventActivity:
		if e.Activity != nil {
			return e.Activity
		}
	case EventCarRental:
		if e.CarRental != nil {
			return e.CarRental
		}
	}
	return nil
}
