package places_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/metrics"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/places"
)

func TestClient_Search_MapsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "pier 39", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"place_id": 101, "lat": "37.8087", "lon": "-122.4098",
			 "name": "Pier 39", "display_name": "Pier 39, San Francisco, CA", "importance": 0.7},
			{"place_id": 102, "lat": "not-a-number", "lon": "-1", "name": "Broken"}
		]`))
	}))
	defer srv.Close()

	results, err := places.NewClient(srv.URL).Search(context.Background(), "pier 39", nil)

	require.NoError(t, err)
	require.Len(t, results, 1, "coordinate-less rows are dropped")
	assert.Equal(t, "101", results[0].PlaceID)
	assert.InDelta(t, 37.8087, results[0].Lat, 1e-9)
	assert.Equal(t, "Pier 39", results[0].Name)
	assert.Equal(t, "Pier 39, San Francisco, CA", results[0].Address)
	assert.InDelta(t, 0.7, results[0].Importance, 1e-9)
}

func TestClient_Search_ViewboxParam(t *testing.T) {
	var gotViewbox string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotViewbox = r.URL.Query().Get("viewbox")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	box := &places.Viewbox{MinLat: 37.5, MaxLat: 38.0, MinLng: -122.6, MaxLng: -122.2}
	_, err := places.NewClient(srv.URL).Search(context.Background(), "pier", box)

	require.NoError(t, err)
	assert.NotEmpty(t, gotViewbox)
}

func TestClient_Search_Non200IsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := places.NewClient(srv.URL).Search(context.Background(), "pier", nil)

	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Search_CountsUpstreamCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	requests := promtestutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("geocoder"))
	errors := promtestutil.ToFloat64(metrics.UpstreamErrors.WithLabelValues("geocoder"))

	_, err := places.NewClient(srv.URL).Search(context.Background(), "pier", nil)
	require.NoError(t, err)

	assert.Equal(t, requests+1, promtestutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("geocoder")))
	assert.Equal(t, errors, promtestutil.ToFloat64(metrics.UpstreamErrors.WithLabelValues("geocoder")))
}

func TestClient_Search_CountsUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	errors := promtestutil.ToFloat64(metrics.UpstreamErrors.WithLabelValues("geocoder"))

	_, err := places.NewClient(srv.URL).Search(context.Background(), "pier", nil)
	require.Error(t, err)

	assert.Equal(t, errors+1, promtestutil.ToFloat64(metrics.UpstreamErrors.WithLabelValues("geocoder")))
}

func TestClient_GeocodeCity_NoResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	coord, err := places.NewClient(srv.URL).GeocodeCity(context.Background(), "Atlantis")

	require.NoError(t, err)
	assert.Nil(t, coord)
}

func TestClient_GeocodeCity_ReturnsFirstResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"place_id": 1, "lat": "48.8566", "lon": "2.3522", "display_name": "Paris"}]`))
	}))
	defer srv.Close()

	coord, err := places.NewClient(srv.URL).GeocodeCity(context.Background(), "Paris")

	require.NoError(t, err)
	require.NotNil(t, coord)
	assert.InDelta(t, 48.8566, coord.Lat, 1e-9)
	assert.InDelta(t, 2.3522, coord.Lng, 1e-9)
}
