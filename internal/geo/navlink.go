package geo

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// NavLink is a ready-to-open directions deep link for an external map
// application. URL is opaque to the rest of the system — it is constructed
// here and never resolved or validated.
type NavLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

const directionsBase = "https://www.google.com/maps/dir/?api=1"

// DirectionsLink builds a directions link from origin (the user's current
// location, nil when unknown) to dest. The destination representation is
// chosen by strict priority — coordinates, then address, then display
// name — and the first non-empty tier wins. Returns nil only when dest has
// none of the three.
//
// label is the variant-specific short label (airport code, hotel name) and
// is shown regardless of which tier produced the URL.
func DirectionsLink(origin *domain.LatLng, dest Place, label string) *NavLink {
	destination := destinationParam(dest)
	if destination == "" {
		return nil
	}

	u := directionsBase + "&destination=" + url.QueryEscape(destination)
	if origin != nil {
		u += "&origin=" + url.QueryEscape(formatCoords(*origin))
	}

	if strings.TrimSpace(label) == "" {
		label = dest.DisplayName
	}
	return &NavLink{Label: label, URL: u}
}

// destinationParam picks the most precise available representation of dest.
func destinationParam(dest Place) string {
	if dest.Coordinates != nil {
		return formatCoords(*dest.Coordinates)
	}
	if strings.TrimSpace(dest.Address) != "" {
		return dest.Address
	}
	if strings.TrimSpace(dest.DisplayName) != "" {
		return dest.DisplayName
	}
	return ""
}

// formatCoords renders a coordinate pair the way map URLs expect it.
// Six decimals is ~0.1m, more than enough for navigation.
func formatCoords(c domain.LatLng) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}
