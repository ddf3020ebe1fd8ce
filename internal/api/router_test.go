package api

import (
	"delivery-route-optimizer/internal/adapters/cache"
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/api/dto"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var storedOutlets = []domain.Location{
	{ID: 1, Name: "Hebbal", Coordinates: domain.Coordinates{Lat: 13.0378748, Lon: 77.6017724}},
	{ID: 2, Name: "Yeshwantpur", Coordinates: domain.Coordinates{Lat: 13.0215944, Lon: 77.5508614}},
	{ID: 3, Name: "Indiranagar", Coordinates: domain.Coordinates{Lat: 12.9781839, Lon: 77.6398741}},
	{ID: 4, Name: "Sarjapura", Coordinates: domain.Coordinates{Lat: 12.8583418, Lon: 77.7808364}},
	{ID: 5, Name: "KR Puram", Coordinates: domain.Coordinates{Lat: 13.0075813, Lon: 77.6919984}},
}

const testMaxLocations = 50

func newTestRouter() http.Handler {
	repo := &repositories.StaticLocationRepository{Locations: storedOutlets}
	planner := &services.RoutePlanner{Cache: cache.NewMemoryDistanceCache()}
	return NewRouter(repo, planner, 5*time.Second, testMaxLocations)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = do(t, newTestRouter(), http.MethodPost, "/health", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestListLocations(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/locations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListLocationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Locations, 5)
	require.Equal(t, "Hebbal", res.Locations[0].Name)
	require.True(t, res.Locations[0].IsDepot)
	require.False(t, res.Locations[1].IsDepot)
}

func TestPlanRouteFromRequest(t *testing.T) {
	body := `{
		"locations": [
			{"name": "Hebbal", "lat": 13.0378748, "lon": 77.6017724},
			{"name": "Yeshwantpur", "lat": 13.0215944, "lon": 77.5508614},
			{"name": "Indiranagar", "lat": 12.9781839, "lon": 77.6398741},
			{"name": "Sarjapura", "lat": 12.8583418, "lon": 77.7808364},
			{"name": "KR Puram", "lat": 13.0075813, "lon": 77.6919984}
		],
		"include_matrix": true
	}`

	rec := do(t, newTestRouter(), http.MethodPost, "/routes", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Equal(t, "exact", res.Algorithm)
	require.Len(t, res.Tour, 6)
	require.Equal(t, 0, res.Tour[0])
	require.Equal(t, 0, res.Tour[5])
	require.Len(t, res.Legs, 5)
	require.Equal(t, "Hebbal", res.Legs[0].From)
	require.Equal(t, res.TotalDistanceKm, res.Legs[4].CumulativeKm)
	require.Equal(t, float64(res.TotalDistanceMeters)/1000, res.TotalDistanceKm)
	require.Len(t, res.Matrix, 5)
}

func TestPlanRouteUsesStoredLocations(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodPost, "/routes", `{"algorithm": "heuristic", "multi_start": 3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "heuristic", res.Algorithm)
	require.Len(t, res.Legs, 5)
	require.Equal(t, "Hebbal", res.Legs[0].From)
	require.Nil(t, res.Matrix)

	// Heuristic and exact agree on five outlets.
	exact := do(t, h, http.MethodPost, "/routes", `{}`)
	require.Equal(t, http.StatusOK, exact.Code)

	var exactRes dto.RouteResponse
	require.NoError(t, json.Unmarshal(exact.Body.Bytes(), &exactRes))
	require.GreaterOrEqual(t, res.TotalDistanceMeters, exactRes.TotalDistanceMeters)
}

func TestPlanRouteErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"invalid latitude", `{"locations":[{"name":"a","lat":200,"lon":0},{"name":"b","lat":1,"lon":1}]}`, http.StatusBadRequest},
		{"single location", `{"locations":[{"name":"a","lat":1,"lon":1}]}`, http.StatusBadRequest},
		{"missing lon", `{"locations":[{"name":"a","lat":1},{"name":"b","lat":1,"lon":1}]}`, http.StatusBadRequest},
		{"bad json", `{"locations":`, http.StatusBadRequest},
		{"unknown field", `{"depot": 1}`, http.StatusBadRequest},
		{"trailing object", `{} {}`, http.StatusBadRequest},
		{"unknown algorithm", `{"algorithm": "annealing"}`, http.StatusBadRequest},
		{"multi start range", `{"multi_start": 1000}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, newTestRouter(), http.MethodPost, "/routes", tc.body)
			require.Equal(t, tc.want, rec.Code, rec.Body.String())
			require.Contains(t, rec.Body.String(), `"error"`)
		})
	}

	rec := do(t, newTestRouter(), http.MethodGet, "/routes", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPlanRouteExactTooLarge(t *testing.T) {
	req := dto.RouteRequest{Algorithm: "exact"}
	for i := 0; i <= services.DefaultExactHardLimit; i++ {
		lat, lon := 13.0, 77.5+float64(i)*0.01
		req.Locations = append(req.Locations, dto.LocationRequest{Lat: &lat, Lon: &lon})
	}

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := do(t, newTestRouter(), http.MethodPost, "/routes", string(body))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestPlanRouteRejectsTooManyLocations(t *testing.T) {
	var req dto.RouteRequest
	for i := 0; i <= testMaxLocations; i++ {
		lat, lon := 13.0, 77.5+float64(i)*0.001
		req.Locations = append(req.Locations, dto.LocationRequest{Lat: &lat, Lon: &lon})
	}

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := do(t, newTestRouter(), http.MethodPost, "/routes", string(body))
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	require.Contains(t, rec.Body.String(), "at most 50 locations")
}

func TestPlanRouteRejectsOversizedBody(t *testing.T) {
	body := `{"algorithm": "` + strings.Repeat("x", 2<<20) + `"}`

	rec := do(t, newTestRouter(), http.MethodPost, "/routes", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter()
	_ = do(t, h, http.MethodPost, "/routes", `{}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "routeopt_solves_total")
}
