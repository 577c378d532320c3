// Package geo derives navigable locations from events: the per-variant
// start/end extraction rules and the external-map directions links built
// from them. This package is the single source of truth for "where is this
// event" — the itinerary assembler and the ICS exporter both consume it
// rather than switching on event types themselves.
package geo

import (
	"strings"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// Place is a best-effort location for one end of an event. Fields are
// filled in decreasing order of precision: coordinates when known, then a
// postal address, then a human-readable name. DisplayName is never empty —
// it falls back to the event title.
type Place struct {
	Coordinates *domain.LatLng
	Address     string
	DisplayName string
}

// StartPoint returns the place an event begins: a flight's departure
// airport, a car rental's pickup location, and the venue itself for the
// stationary variants.
func StartPoint(e domain.Event) Place {
	switch e.Type {
	case domain.EventFlight:
		if e.Flight != nil {
			return airportPlace(e.Flight.Departure, e)
		}
	case domain.EventHotel:
		if e.Hotel != nil {
			return hotelPlace(e.Hotel, e)
		}
	case domain.EventRestaurant:
		if e.Restaurant != nil {
			return restaurantPlace(e.Restaurant, e)
		}
	case domain.EventActivity:
		if e.Activity != nil {
			return activityPlace(e.Activity, e)
		}
	case domain.EventCarRental:
		if e.CarRental != nil {
			return rentalPlace(e.CarRental.PickupCoordinates, e.CarRental.PickupLocation, e)
		}
	}
	return basePlace(e)
}

// EndPoint returns the place an event finishes. It differs from StartPoint
// only for flights (arrival airport) and car rentals (return location).
func EndPoint(e domain.Event) Place {
	switch e.Type {
	case domain.EventFlight:
		if e.Flight != nil {
			return airportPlace(e.Flight.Arrival, e)
		}
	case domain.EventCarRental:
		if e.CarRental != nil {
			return rentalPlace(e.CarRental.ReturnCoordinates, e.CarRental.ReturnLocation, e)
		}
	}
	return StartPoint(e)
}

// ShortLabel returns the variant-specific destination label shown on a
// navigation link: the airport IATA code for flights, the venue name for
// the stationary variants. Falls back to the event title.
func ShortLabel(e domain.Event) string {
	switch e.Type {
	case domain.EventFlight:
		if e.Flight != nil && e.Flight.Departure.Code != "" {
			return e.Flight.Departure.Code
		}
	case domain.EventHotel:
		if e.Hotel != nil && e.Hotel.HotelName != "" {
			return e.Hotel.HotelName
		}
	case domain.EventRestaurant:
		if e.Restaurant != nil && e.Restaurant.Name != "" {
			return e.Restaurant.Name
		}
	case domain.EventActivity:
		if e.Activity != nil && e.Activity.LocationName != "" {
			return e.Activity.LocationName
		}
	case domain.EventCarRental:
		if e.CarRental != nil && e.CarRental.PickupLocation != "" {
			return e.CarRental.PickupLocation
		}
	}
	if e.LocationName != "" {
		return e.LocationName
	}
	return e.Title
}

func airportPlace(a domain.AirportInfo, e domain.Event) Place {
	name := a.Name
	if name == "" {
		name = a.Code
	}
	return Place{
		Coordinates: a.Coordinates,
		DisplayName: fallbackName(e, name),
	}
}

func hotelPlace(h *domain.HotelDetails, e domain.Event) Place {
	return Place{
		Coordinates: firstCoords(h.Coordinates, e.Coordinates),
		Address:     h.Address,
		DisplayName: fallbackName(e, h.HotelName),
	}
}

func restaurantPlace(r *domain.RestaurantDetails, e domain.Event) Place {
	return Place{
		Coordinates: firstCoords(r.Coordinates, e.Coordinates),
		Address:     r.Address,
		DisplayName: fallbackName(e, r.Name),
	}
}

func activityPlace(a *domain.ActivityDetails, e domain.Event) Place {
	return Place{
		Coordinates: firstCoords(a.Coordinates, e.Coordinates),
		DisplayName: fallbackName(e, a.LocationName),
	}
}

func rentalPlace(coords *domain.LatLng, location string, e domain.Event) Place {
	return Place{
		Coordinates: coords,
		DisplayName: fallbackName(e, location),
	}
}

// basePlace is the fallback for malformed events (missing or mismatched
// details payload): the generic base fields carry what they can.
func basePlace(e domain.Event) Place {
	return Place{
		Coordinates: e.Coordinates,
		DisplayName: fallbackName(e, e.LocationName),
	}
}

// fallbackName returns the first non-blank of name, the event's generic
// location name, and the event title.
func fallbackName(e domain.Event, name string) string {
	for _, s := range []string{name, e.LocationName, e.Title} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return e.Title
}

func firstCoords(candidates ...*domain.LatLng) *domain.LatLng {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}
