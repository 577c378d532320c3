// Package itinerary turns a trip's flat event list into the day-grouped
// view model the UI renders: events sorted and bucketed per calendar day,
// the covering hotel resolved per night, and directions links attached to
// each row.
//
// Everything here is a pure function over in-memory data. Assemble never
// fails: a malformed event degrades to empty location fields and nil links
// rather than blanking the whole itinerary.
package itinerary

import (
	"sort"
	"time"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/dates"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/geo"
)

// Item wraps one event with its computed navigation links.
// Items are recomputed on every read and never persisted.
type Item struct {
	Event domain.Event `json:"event"`

	// Duration is the event's length rendered for display, e.g. "2h 15m".
	// Empty for hotels, whose stay is conveyed by the day banner instead.
	Duration string `json:"duration,omitempty"`

	// NavToEvent points from the user's current location to the event's
	// start point. Nil for hotels and for events with no usable location.
	NavToEvent *geo.NavLink `json:"nav_to_event,omitempty"`

	// NavToDeparture points to a flight's departure airport. Nil for all
	// other variants.
	NavToDeparture *geo.NavLink `json:"nav_to_departure,omitempty"`

	// NavToHotel points to the hotel covering this event's night. Only the
	// chronologically last non-hotel event of a day carries it.
	NavToHotel *geo.NavLink `json:"nav_to_hotel,omitempty"`
}

// DayHotel is the banner shown on days fully covered by a hotel stay.
type DayHotel struct {
	Event domain.Event `json:"event"`
	Nav   *geo.NavLink `json:"nav,omitempty"`
}

// DayGroup is one calendar day of the itinerary.
type DayGroup struct {
	Date     time.Time `json:"date"`
	Items    []Item    `json:"items"`
	DayHotel *DayHotel `json:"day_hotel,omitempty"`
}

// Assemble builds the ordered day groups for one trip's events.
// currentLocation is the user's position if known, nil otherwise; it only
// affects the origin half of the generated links.
//
// The input slice is not modified. Running Assemble twice over the same
// events yields structurally identical output.
func Assemble(events []domain.Event, currentLocation *domain.LatLng) []DayGroup {
	if len(events) == 0 {
		return []DayGroup{}
	}

	// Stable sort by start instant; ties keep insertion order.
	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	hotels := make([]domain.Event, 0)
	for _, e := range sorted {
		if e.Type == domain.EventHotel {
			hotels = append(hotels, e)
		}
	}

	// Index of the chronologically last non-hotel event per day key.
	lastNonHotel := make(map[string]int)
	for i, e := range sorted {
		if e.Type != domain.EventHotel {
			lastNonHotel[dates.DayKey(e.StartTime)] = i
		}
	}

	items := make([]Item, len(sorted))
	for i, e := range sorted {
		item := Item{Event: e}
		day := dates.DayKey(e.StartTime)

		if e.Type != domain.EventHotel {
			item.Duration = dates.FormatLegDuration(e.EndTime.Sub(e.StartTime))
			item.NavToEvent = geo.DirectionsLink(currentLocation, geo.StartPoint(e), geo.ShortLabel(e))
		}
		if e.Type == domain.EventFlight {
			item.NavToDeparture = geo.DirectionsLink(currentLocation, geo.StartPoint(e), geo.ShortLabel(e))
		}
		if lastNonHotel[day] == i && e.Type != domain.EventHotel && !followedBySameDayHotel(sorted, i) {
			if hotel, ok := coveringHotel(hotels, day); ok {
				item.NavToHotel = geo.DirectionsLink(currentLocation, geo.StartPoint(hotel), geo.ShortLabel(hotel))
			}
		}
		items[i] = item
	}

	// Group by day and attach the per-day hotel banner.
	byDay := make(map[string][]Item)
	for _, item := range items {
		day := dates.DayKey(item.Event.StartTime)
		byDay[day] = append(byDay[day], item)
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		date, err := dates.ParseDayKey(key)
		if err != nil {
			continue // unreachable: keys come from DayKey
		}
		group := DayGroup{Date: date, Items: byDay[key]}
		if hotel, ok := bannerHotel(hotels, key); ok {
			group.DayHotel = &DayHotel{
				Event: hotel,
				Nav:   geo.DirectionsLink(currentLocation, geo.StartPoint(hotel), geo.ShortLabel(hotel)),
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// followedBySameDayHotel reports whether the event after sorted[i] is a
// hotel checking in on the same day. When it is, the "go to hotel" link is
// suppressed — the check-in row itself already represents the arrival.
func followedBySameDayHotel(sorted []domain.Event, i int) bool {
	if i+1 >= len(sorted) {
		return false
	}
	next := sorted[i+1]
	return next.Type == domain.EventHotel &&
		dates.SameDay(next.StartTime, sorted[i].StartTime)
}

// coveringHotel finds the hotel for a day's "go to hotel" link: stays whose
// [checkIn, checkOut] inclusive day range contains the day, latest check-in
// winning when bookings overlap.
func coveringHotel(hotels []domain.Event, day string) (domain.Event, bool) {
	return pickHotel(hotels, func(h domain.Event) bool {
		return day >= dates.DayKey(h.StartTime) && day <= dates.DayKey(h.EndTime)
	})
}

// bannerHotel finds the hotel for the day banner: the half-open
// [checkIn, checkOut) range, additionally excluding the check-in day
// itself — on that day the stay is already visible as a normal event row.
func bannerHotel(hotels []domain.Event, day string) (domain.Event, bool) {
	return pickHotel(hotels, func(h domain.Event) bool {
		return day > dates.DayKey(h.StartTime) && day < dates.DayKey(h.EndTime)
	})
}

// pickHotel returns the qualifying hotel with the latest check-in instant.
// Ties fall to the later entry, i.e. insertion order among equal instants.
func pickHotel(hotels []domain.Event, covers func(domain.Event) bool) (domain.Event, bool) {
	var best domain.Event
	found := false
	for _, h := range hotels {
		if !covers(h) {
			continue
		}
		if !found || !h.StartTime.Before(best.StartTime) {
			best = h
			found = true
		}
	}
	return best, found
}
