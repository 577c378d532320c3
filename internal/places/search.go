package places

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/metrics"
)

// dedupThresholdDeg is the raw lat/lng delta under which two results count
// as the same place, roughly 100 meters at mid latitudes. Plain deltas on
// degrees, not geodesic distance.
const dedupThresholdDeg = 0.001

// viewboxPadDeg is the half-size of the bias box built around each
// geocoded city, about 20 km.
const viewboxPadDeg = 0.2

// Searcher runs biased location searches and cleans the results.
type Searcher struct {
	geocoder Geocoder
}

// NewSearcher constructs a Searcher over the given geocoder.
func NewSearcher(g Geocoder) *Searcher {
	return &Searcher{geocoder: g}
}

// Search geocodes the bias cities into a search region, runs the query, and
// returns the deduplicated, relevance-ranked results. With no bias cities
// (or none that geocode) the search is global.
//
// A city that fails to geocode because of an upstream error fails the whole
// search; the caller surfaces that as a typed failure, never a silent
// unbiased search the user did not ask for.
func (s *Searcher) Search(ctx context.Context, query string, biasCities []string) ([]Result, error) {
	metrics.LocationSearches.Inc()

	box, err := s.biasBox(ctx, biasCities)
	if err != nil {
		return nil, fmt.Errorf("places.Searcher.Search: %w", err)
	}

	results, err := s.geocoder.Search(ctx, query, box)
	if err != nil {
		return nil, fmt.Errorf("places.Searcher.Search: %w", err)
	}

	results = Dedup(results)
	rankByImportance(results)
	return results, nil
}

// biasBox geocodes each city and returns a bounding box covering all of
// them, padded by viewboxPadDeg. Returns nil when no city resolves.
func (s *Searcher) biasBox(ctx context.Context, cities []string) (*Viewbox, error) {
	var box *Viewbox
	for _, city := range cities {
		coord, err := s.geocoder.GeocodeCity(ctx, city)
		if err != nil {
			return nil, err
		}
		if coord == nil {
			continue
		}
		if box == nil {
			box = &Viewbox{
				MinLat: coord.Lat - viewboxPadDeg, MaxLat: coord.Lat + viewboxPadDeg,
				MinLng: coord.Lng - viewboxPadDeg, MaxLng: coord.Lng + viewboxPadDeg,
			}
			continue
		}
		box.MinLat = math.Min(box.MinLat, coord.Lat-viewboxPadDeg)
		box.MaxLat = math.Max(box.MaxLat, coord.Lat+viewboxPadDeg)
		box.MinLng = math.Min(box.MinLng, coord.Lng-viewboxPadDeg)
		box.MaxLng = math.Max(box.MaxLng, coord.Lng+viewboxPadDeg)
	}
	return box, nil
}

// Dedup removes results within dedupThresholdDeg of an earlier result.
// The first occurrence wins, so upstream ordering decides which duplicate
// survives. The input slice is not modified.
func Dedup(results []Result) []Result {
	kept := make([]Result, 0, len(results))
	for _, r := range results {
		dup := false
		for _, k := range kept {
			if math.Abs(r.Lat-k.Lat) < dedupThresholdDeg && math.Abs(r.Lng-k.Lng) < dedupThresholdDeg {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, r)
		}
	}
	return kept
}

// rankByImportance orders results by upstream importance, highest first.
// Results without a score (zero) keep their insertion order at the tail —
// the stable sort leaves equal scores untouched.
func rankByImportance(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Importance > results[j].Importance
	})
}
