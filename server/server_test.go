package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/core"
	"github.com/katalvlaran/routeplanner/metrics"
	"github.com/katalvlaran/routeplanner/planner"
)

// newTestServer serves the triangle A–B(5), B–C(3), A–C(10) plus an
// unconnected Island.
func newTestServer(t *testing.T) (*Server, *metrics.Registry) {
	t.Helper()

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 3))
	require.NoError(t, g.AddEdge("A", "C", 10))
	require.NoError(t, g.AddVertex("Island"))

	attractions := catalog.NewAttractions()
	require.NoError(t, attractions.Add("X", "B"))
	require.NoError(t, attractions.Add("Fountain", "C"))
	require.NoError(t, attractions.Add("Lighthouse", "Island"))

	reg := metrics.NewRegistry()
	p, err := planner.New(g, attractions, planner.WithMetrics(reg))
	require.NoError(t, err)

	return NewServer(p, attractions, reg, zap.NewNop()), reg
}

func do(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status      string `json:"status"`
		Cities      int    `json:"cities"`
		Attractions int    `json:"attractions"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, 4, body.Cities)
	assert.Equal(t, 3, body.Attractions)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(RequestIDHeader))
}

func TestListCitiesAndAttractions(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cities struct {
		Cities []string `json:"cities"`
	}
	decode(t, rec, &cities)
	assert.Equal(t, []string{"A", "B", "C", "Island"}, cities.Cities)

	rec = do(t, s, http.MethodGet, "/v1/attractions?city=C", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var attractions struct {
		Attractions []catalog.Attraction `json:"attractions"`
	}
	decode(t, rec, &attractions)
	assert.Equal(t, []catalog.Attraction{{Name: "Fountain", City: "C"}}, attractions.Attractions)

	rec = do(t, s, http.MethodGet, "/v1/attractions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &attractions)
	assert.Len(t, attractions.Attractions, 3)

	rec = do(t, s, http.MethodGet, "/v1/attractions?city=Atlantis", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouteByQuery(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/route?start=A&end=C", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got routeResponse
	decode(t, rec, &got)
	assert.Equal(t, []string{"A", "B", "C"}, got.Cities)
	assert.Equal(t, int64(8), got.Distance)
	assert.Equal(t, "A -> B -> C (8 miles)", got.Summary)

	rec = do(t, s, http.MethodGet, "/v1/route?start=A&end=A&attractions=Fountain,%20X", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &got)
	assert.Equal(t, "A", got.Cities[0])
	assert.Equal(t, "A", got.Cities[len(got.Cities)-1])
	assert.Contains(t, got.Cities, "C")
}

func TestRouteErrors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing end", "/v1/route?start=A", http.StatusBadRequest},
		{"unknown start", "/v1/route?start=Nowhere&end=C", http.StatusNotFound},
		{"unknown attraction", "/v1/route?start=A&end=C&attractions=Ghost", http.StatusNotFound},
		{"unreachable", "/v1/route?start=A&end=C&attractions=Lighthouse", http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s, http.MethodGet, tc.target, nil)
			assert.Equal(t, tc.status, rec.Code)

			var body map[string]string
			decode(t, rec, &body)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestRouteByBody(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/routes", routeRequest{Start: "A", End: "C", Attractions: []string{"X"}})
	require.Equal(t, http.StatusOK, rec.Code)
	var got routeResponse
	decode(t, rec, &got)
	assert.Equal(t, []string{"A", "B", "C"}, got.Cities)
	assert.Equal(t, int64(8), got.Distance)

	rec = do(t, s, http.MethodPost, "/v1/routes", map[string]string{"start": "A"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouteBatch(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodPost, "/v1/routes/batch", batchRequest{Requests: []routeRequest{
		{Start: "A", End: "C"},
		{Start: "A", End: "C", Attractions: []string{"Ghost"}},
		{Start: "A", End: "Island"},
	}})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []batchItem `json:"results"`
	}
	decode(t, rec, &body)
	require.Len(t, body.Results, 3)

	assert.Equal(t, http.StatusOK, body.Results[0].Status)
	require.NotNil(t, body.Results[0].Route)
	assert.Equal(t, int64(8), body.Results[0].Route.Distance)
	assert.Equal(t, http.StatusNotFound, body.Results[1].Status)
	assert.Contains(t, body.Results[1].Error, "Ghost")
	assert.Equal(t, http.StatusUnprocessableEntity, body.Results[2].Status)

	rec = do(t, s, http.MethodPost, "/v1/routes/batch", batchRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDistancesFrom(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/cities/A/distances", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		From      string           `json:"from"`
		Distances map[string]int64 `json:"distances"`
	}
	decode(t, rec, &body)
	assert.Equal(t, "A", body.From)
	assert.Equal(t, map[string]int64{"A": 0, "B": 5, "C": 8}, body.Distances)

	rec = do(t, s, http.MethodGet, "/v1/cities/Nowhere/distances", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReachableAndRegions(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/v1/cities/A/reachable?max_hops=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		From string         `json:"from"`
		Hops map[string]int `json:"hops"`
	}
	decode(t, rec, &body)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1}, body.Hops)

	rec = do(t, s, http.MethodGet, "/v1/cities/A/reachable?max_hops=-2", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodGet, "/v1/cities/Nowhere/reachable", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodGet, "/v1/regions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var regions struct {
		Regions [][]string `json:"regions"`
	}
	decode(t, rec, &regions)
	assert.Equal(t, [][]string{{"A", "B", "C"}, {"Island"}}, regions.Regions)
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/cities", nil)
	req.Header.Set("Origin", "https://maps.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	p, err := planner.New(g, nil)
	require.NoError(t, err)
	restricted := NewServer(p, nil, nil, nil, WithAllowedOrigins("https://trips.example.com"))

	req = httptest.NewRequest(http.MethodGet, "/v1/cities", nil)
	req.Header.Set("Origin", "https://trips.example.com")
	rec = httptest.NewRecorder()
	restricted.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "https://trips.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/cities", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	restricted.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)

	do(t, s, http.MethodGet, "/v1/route?start=A&end=C", nil)
	rec := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	text := rec.Body.String()
	assert.True(t, strings.Contains(text, `routeplanner_http_requests_total{method="GET",path="/v1/route",status="200"} 1`))
	assert.True(t, strings.Contains(text, `routeplanner_plans_total{kind="route",status="ok"} 1`))
}

func TestNoMetricsWithoutRegistry(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	p, err := planner.New(g, nil)
	require.NoError(t, err)
	s := NewServer(p, nil, nil, nil)

	rec := do(t, s, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(&planner.UnknownCityError{City: "X", Role: "start"}))
	assert.Equal(t, http.StatusNotFound, statusFor(&planner.UnknownAttractionError{Name: "Y"}))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(&planner.UnreachableError{From: "A", To: "B"}))
	assert.Equal(t, http.StatusInternalServerError, statusFor(context.Canceled))
}

func TestStart_GracefulShutdown(t *testing.T) {
	s, _ := newTestServer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx, addr) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
