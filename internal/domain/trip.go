// Package domain contains the core data types for the travel planner.
// This package has zero dependencies beyond uuid and is imported by every
// other internal package (repo, service, handler, itinerary, ics).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single planned trip. A trip is the top-level aggregate;
// events belong to a trip and are cascade-deleted with it.
// StartDate and EndDate are calendar dates (midnight instants), not moments:
// only their year/month/day components are meaningful.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	// Cities is an ordered list of city names used to bias location search
	// toward the places the trip actually visits.
	Cities    []string  `json:"cities,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
