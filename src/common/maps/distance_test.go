package maps_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hjerpbakk/dipsbot/src/common/cache"
	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/maps"
	"github.com/hjerpbakk/dipsbot/src/common/types"
)

func newTestClient(t *testing.T, baseURL string) *maps.Client {
	t.Helper()
	store := cache.NewMemoryStore(time.Minute)
	t.Cleanup(store.Close)

	return maps.NewClient(config.MapsConfig{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		MaxResults: 3,
	}, store, &http.Client{Timeout: 5 * time.Second})
}

func testSnapshot(stationCount int) types.StationSnapshot {
	stations := make([]types.Station, stationCount)
	piped := ""
	for i := range stations {
		stations[i] = types.Station{
			ID:        string(rune('a' + i)),
			Name:      "Station " + string(rune('A'+i)),
			Address:   "Gate " + string(rune('1'+i)),
			Latitude:  63.43 + float64(i)/100,
			Longitude: 10.39 + float64(i)/100,
		}
		if i > 0 {
			piped += "|"
		}
		piped += "63.43,10.39"
	}
	return types.NewStationSnapshot(stations, piped, nil)
}

func distanceHandler(t *testing.T, elements []types.DistanceElement) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/distancematrix/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		response := types.DistanceMatrixResponse{
			Status: "OK",
			Rows:   []types.DistanceMatrixRow{{Elements: elements}},
		}
		_ = json.NewEncoder(w).Encode(response)
	}
}

func TestNearestStationsFiltersAndSorts(t *testing.T) {
	elements := []types.DistanceElement{
		{Status: "OK", Duration: types.DurationValue{Value: 600}},
		{Status: "OK", Duration: types.DurationValue{Value: 120}},
		{Status: "NOT_FOUND"},
		{Status: "OK", Duration: types.DurationValue{Value: 900}},
		{Status: "ZERO_RESULTS"},
	}
	server := httptest.NewServer(distanceHandler(t, elements))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ranked, err := client.NearestStations(context.Background(), "Munkegata 1", testSnapshot(5))
	if err != nil {
		t.Fatalf("NearestStations returned error: %v", err)
	}

	wantDurations := []int64{120, 600, 900}
	wantIDs := []string{"b", "a", "d"}
	if len(ranked) != len(wantDurations) {
		t.Fatalf("got %d stations, want %d", len(ranked), len(wantDurations))
	}
	for i := range ranked {
		if ranked[i].WalkingDuration != wantDurations[i] {
			t.Errorf("station %d duration = %d, want %d", i, ranked[i].WalkingDuration, wantDurations[i])
		}
		if ranked[i].Station.ID != wantIDs[i] {
			t.Errorf("station %d id = %s, want %s", i, ranked[i].Station.ID, wantIDs[i])
		}
	}
}

func TestNearestStationsStableOnEqualDurations(t *testing.T) {
	elements := []types.DistanceElement{
		{Status: "OK", Duration: types.DurationValue{Value: 300}},
		{Status: "OK", Duration: types.DurationValue{Value: 300}},
		{Status: "OK", Duration: types.DurationValue{Value: 300}},
	}
	server := httptest.NewServer(distanceHandler(t, elements))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ranked, err := client.NearestStations(context.Background(), "Munkegata 1", testSnapshot(3))
	if err != nil {
		t.Fatalf("NearestStations returned error: %v", err)
	}

	// Ties keep snapshot order.
	for i, want := range []string{"a", "b", "c"} {
		if ranked[i].Station.ID != want {
			t.Errorf("station %d id = %s, want %s", i, ranked[i].Station.ID, want)
		}
	}
}

func TestNearestStationsEmptyAddress(t *testing.T) {
	client := newTestClient(t, "http://unused")
	_, err := client.NearestStations(context.Background(), "", testSnapshot(1))
	if !errors.Is(err, maps.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestNearestStationsNoRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.DistanceMatrixResponse{Status: "OK"})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.NearestStations(context.Background(), "Munkegata 1", testSnapshot(2))
	if !errors.Is(err, maps.ErrNoRouteFound) {
		t.Errorf("error = %v, want ErrNoRouteFound", err)
	}
}

func TestNearestStationsNoneReachable(t *testing.T) {
	elements := []types.DistanceElement{
		{Status: "NOT_FOUND"},
		{Status: "ZERO_RESULTS"},
	}
	server := httptest.NewServer(distanceHandler(t, elements))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.NearestStations(context.Background(), "Munkegata 1", testSnapshot(2))
	if !errors.Is(err, maps.ErrNoReachableStations) {
		t.Errorf("error = %v, want ErrNoReachableStations", err)
	}
}

func TestNearestStationsSingleFlight(t *testing.T) {
	var queries atomic.Int64
	elements := []types.DistanceElement{
		{Status: "OK", Duration: types.DurationValue{Value: 60}},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries.Add(1)
		time.Sleep(50 * time.Millisecond)
		distanceHandler(t, elements)(w, r)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	snapshot := testSnapshot(1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.NearestStations(context.Background(), "Munkegata 1", snapshot); err != nil {
				t.Errorf("NearestStations returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := queries.Load(); got != 1 {
		t.Errorf("distance query issued %d times for identical concurrent requests, want 1", got)
	}
}
