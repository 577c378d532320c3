package handler

import (
	"net/http"
	"strconv"

	"github.com/kenyangzq/TravelPlanner-sub000/internal/dates"
	"github.com/kenyangzq/TravelPlanner-sub000/internal/domain"
)

// handleWeather implements GET /weather.
// Query parameters: lat, lng (required), start, end (YYYY-MM-DD, required).
// The response maps day keys to forecasts; days the upstream cannot cover
// are simply absent — the client treats missing as "unknown".
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "lat and lng are required decimal degrees")
		return
	}

	start, startErr := dates.ParseDayKey(q.Get("start"))
	end, endErr := dates.ParseDayKey(q.Get("end"))
	if startErr != nil || endErr != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "start and end must be formatted YYYY-MM-DD")
		return
	}

	days := dates.EnumerateDays(start, end)
	forecasts, err := s.forecast.Forecast(r.Context(), domain.LatLng{Lat: lat, Lng: lng}, days)
	if err != nil {
		writeServiceError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, forecasts)
}
