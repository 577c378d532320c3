package geo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/geo"
)

func baseEvent(typ domain.EventType, title string) domain.Event {
	return domain.Event{
		Type:      typ,
		Title:     title,
		StartTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStartPoint_Flight_UsesDepartureAirport(t *testing.T) {
	e := baseEvent(domain.EventFlight, "UA 123")
	e.Flight = &domain.FlightDetails{
		Departure: domain.AirportInfo{
			Code:        "SFO",
			Name:        "San Francisco International",
			Coordinates: &domain.LatLng{Lat: 37.6213, Lng: -122.379},
		},
		Arrival: domain.AirportInfo{Code: "JFK", Name: "John F. Kennedy International"},
	}

	p := geo.StartPoint(e)

	require.NotNil(t, p.Coordinates)
	assert.InDelta(t, 37.6213, p.Coordinates.Lat, 1e-9)
	assert.Equal(t, "San Francisco International", p.DisplayName)
}

func TestEndPoint_Flight_UsesArrivalAirport(t *testing.T) {
	e := baseEvent(domain.EventFlight, "UA 123")
	e.Flight = &domain.FlightDetails{
		Departure: domain.AirportInfo{Code: "SFO"},
		Arrival:   domain.AirportInfo{Code: "JFK"},
	}

	p := geo.EndPoint(e)

	assert.Nil(t, p.Coordinates)
	assert.Equal(t, "JFK", p.DisplayName) // airport name absent, code fills in
}

func TestStartPoint_Hotel_SameAsEndPoint(t *testing.T) {
	e := baseEvent(domain.EventHotel, "Hotel Zetta")
	e.Hotel = &domain.HotelDetails{
		HotelName:   "Hotel Zetta",
		Address:     "55 5th St, San Francisco",
		Coordinates: &domain.LatLng{Lat: 37.7832, Lng: -122.4076},
	}

	start := geo.StartPoint(e)
	end := geo.EndPoint(e)

	assert.Equal(t, start, end)
	assert.Equal(t, "55 5th St, San Francisco", start.Address)
	assert.Equal(t, "Hotel Zetta", start.DisplayName)
}

func TestStartEndPoint_CarRental_PickupAndReturnDiffer(t *testing.T) {
	e := baseEvent(domain.EventCarRental, "Hertz")
	e.CarRental = &domain.CarRentalDetails{
		HasRental:         true,
		PickupLocation:    "SFO",
		ReturnLocation:    "LAX",
		PickupCoordinates: &domain.LatLng{Lat: 37.62, Lng: -122.38},
	}

	start := geo.StartPoint(e)
	end := geo.EndPoint(e)

	require.NotNil(t, start.Coordinates)
	assert.Equal(t, "SFO", start.DisplayName)
	assert.Nil(t, end.Coordinates)
	assert.Equal(t, "LAX", end.DisplayName)
}

func TestStartPoint_CarRental_NoRental_FallsBackToTitle(t *testing.T) {
	e := baseEvent(domain.EventCarRental, "No car this trip")
	e.CarRental = &domain.CarRentalDetails{HasRental: false}

	p := geo.StartPoint(e)

	assert.Nil(t, p.Coordinates)
	assert.Empty(t, p.Address)
	assert.Equal(t, "No car this trip", p.DisplayName)
}

func TestStartPoint_MissingDetails_DegradesToBaseFields(t *testing.T) {
	e := baseEvent(domain.EventRestaurant, "Dinner")
	e.LocationName = "Somewhere downtown"
	e.Coordinates = &domain.LatLng{Lat: 1, Lng: 2}
	// Restaurant pointer left nil: malformed event.

	p := geo.StartPoint(e)

	require.NotNil(t, p.Coordinates)
	assert.Equal(t, "Somewhere downtown", p.DisplayName)
}

func TestStartPoint_DisplayNameNeverEmpty(t *testing.T) {
	for _, typ := range []domain.EventType{
		domain.EventFlight, domain.EventHotel, domain.EventRestaurant,
		domain.EventActivity, domain.EventCarRental,
	} {
		e := baseEvent(typ, "Fallback Title")
		p := geo.StartPoint(e)
		assert.Equal(t, "Fallback Title", p.DisplayName, "type %s", typ)
	}
}

func TestShortLabel_PerVariant(t *testing.T) {
	flight := baseEvent(domain.EventFlight, "Morning flight")
	flight.Flight = &domain.FlightDetails{Departure: domain.AirportInfo{Code: "SFO"}}
	assert.Equal(t, "SFO", geo.ShortLabel(flight))

	hotel := baseEvent(domain.EventHotel, "Stay")
	hotel.Hotel = &domain.HotelDetails{HotelName: "Hotel Zetta"}
	assert.Equal(t, "Hotel Zetta", geo.ShortLabel(hotel))

	plain := baseEvent(domain.EventActivity, "Museum visit")
	assert.Equal(t, "Museum visit", geo.ShortLabel(plain))
}
