// Package ics renders a trip's events into an RFC 5545 calendar document
// suitable for import by third-party calendar applications.
//
// Serialization is delegated to arran4/golang-ical; this package owns the
// travel-specific mapping: stable UIDs, the all-day convention for hotel
// stays, and per-variant descriptions. Property values are handed over raw;
// the library applies RFC 5545 TEXT escaping during Serialize.
package ics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/dates"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/geo"
)

// uidSuffix namespaces event UIDs so re-exporting the same trip yields the
// same UID per event, letting calendar apps update instead of duplicate.
const uidSuffix = "@travelplanner"

const prodID = "-//TravelPlanner//Trip Export//EN"

// Serialize renders trip's events as a single VCALENDAR document.
// Events are emitted in start-instant order. Hotels become all-day events
// spanning check-in through check-out (DTEND is exclusive per the format,
// so one day past check-out); every other variant keeps full date-times.
func Serialize(trip domain.Trip, events []domain.Event) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetXWRCalName(calendarName(trip))

	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	now := time.Now().UTC()
	for _, e := range sorted {
		ve := cal.AddEvent(e.ID.String() + uidSuffix)
		ve.SetDtStampTime(now)

		if e.Type == domain.EventHotel {
			ve.SetAllDayStartAt(dates.Truncate(e.StartTime))
			ve.SetAllDayEndAt(dates.Truncate(e.EndTime).AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.StartTime)
			ve.SetEndAt(e.EndTime)
		}

		ve.SetSummary(summary(e))
		if desc := description(e); desc != "" {
			ve.SetDescription(desc)
		}
		if loc := location(e); loc != "" {
			ve.SetLocation(loc)
		}
	}

	return cal.Serialize(), nil
}

func calendarName(trip domain.Trip) string {
	if trip.Name != "" {
		return trip.Name
	}
	return "Trip"
}

func summary(e domain.Event) string {
	if strings.TrimSpace(e.Title) != "" {
		return e.Title
	}
	return geo.ShortLabel(e)
}

// location returns the LOCATION value per the start-point extraction rules:
// the variant's address when present, its display name otherwise.
func location(e domain.Event) string {
	p := geo.StartPoint(e)
	if strings.TrimSpace(p.Address) != "" {
		return p.Address
	}
	return p.DisplayName
}

// description builds the variant-specific DESCRIPTION body: the free-text
// notes first when present, then one line per non-empty detail field.
func description(e domain.Event) string {
	var lines []string
	if strings.TrimSpace(e.Notes) != "" {
		lines = append(lines, e.Notes)
	}
	lines = append(lines, detailLines(e)...)
	return strings.Join(lines, "\n")
}

func detailLines(e domain.Event) []string {
	switch e.Type {
	case domain.EventFlight:
		if e.Flight != nil {
			return flightLines(e.Flight)
		}
	case domain.EventHotel:
		if e.Hotel != nil {
			return hotelLines(e, e.Hotel)
		}
	case domain.EventRestaurant:
		if e.Restaurant != nil {
			return restaurantLines(e.Restaurant)
		}
	case domain.EventActivity:
		if e.Activity != nil {
			return activityLines(e.Activity)
		}
	case domain.EventCarRental:
		if e.CarRental != nil {
			return carRentalLines(e.CarRental)
		}
	}
	return nil
}

func flightLines(f *domain.FlightDetails) []string {
	var lines []string
	if f.Airline != "" {
		airline := f.Airline
		if f.FlightNumber != "" {
			airline += " " + f.FlightNumber
		}
		lines = append(lines, "Airline: "+airline)
	}
	if f.Departure.Terminal != "" {
		lines = append(lines, "Terminal: "+f.Departure.Terminal)
	}
	if f.Departure.Gate != "" {
		lines = append(lines, "Gate: "+f.Departure.Gate)
	}
	if f.Status != "" {
		lines = append(lines, "Status: "+f.Status)
	}
	return lines
}

func hotelLines(e domain.Event, h *domain.HotelDetails) []string {
	lines := []string{
		fmt.Sprintf("Check-in: %s", dates.DayKey(e.StartTime)),
		fmt.Sprintf("Check-out: %s", dates.DayKey(e.EndTime)),
	}
	if h.Address != "" {
		lines = append(lines, "Address: "+h.Address)
	}
	if h.ConfirmationNumber != "" {
		lines = append(lines, "Confirmation: "+h.ConfirmationNumber)
	}
	return lines
}

func restaurantLines(r *domain.RestaurantDetails) []string {
	var lines []string
	if r.Cuisine != "" {
		lines = append(lines, "Cuisine: "+r.Cuisine)
	}
	if r.PartySize > 0 {
		lines = append(lines, fmt.Sprintf("Party size: %d", r.PartySize))
	}
	if r.Address != "" {
		lines = append(lines, "Address: "+r.Address)
	}
	if r.ConfirmationNumber != "" {
		lines = append(lines, "Confirmation: "+r.ConfirmationNumber)
	}
	return lines
}

func activityLines(a *domain.ActivityDetails) []string {
	var lines []string
	if a.LocationName != "" {
		lines = append(lines, "Location: "+a.LocationName)
	}
	if a.Description != "" {
		lines = append(lines, a.Description)
	}
	return lines
}

func carRentalLines(c *domain.CarRentalDetails) []string {
	if !c.HasRental {
		return []string{"No car rental"}
	}
	var lines []string
	if c.Company != "" {
		lines = append(lines, "Company: "+c.Company)
	}
	if c.PickupLocation != "" {
		lines = append(lines, "Pickup: "+c.PickupLocation)
	}
	if c.ReturnLocation != "" {
		lines = append(lines, "Return: "+c.ReturnLocation)
	}
	if c.ConfirmationNumber != "" {
		lines = append(lines, "Confirmation: "+c.ConfirmationNumber)
	}
	return lines
}
