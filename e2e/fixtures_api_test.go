//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"
)

// fakeAPI serves the cars listing endpoint from memory and records every
// query it receives
type fakeAPI struct {
	server *httptest.Server

	mu      sync.Mutex
	queries []url.Values
	total   int    // cars available for any query
	message string // when set, answered instead of cars
}

func newFakeAPI(t *testing.T, total int) *fakeAPI {
	t.Helper()
	api := &fakeAPI{total: total}
	api.server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) URL() string { return a.server.URL }

func (a *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/v1/cars" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	a.mu.Lock()
	a.queries = append(a.queries, q)
	total, message := a.total, a.message
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if message != "" {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
		return
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	n := min(limit, total)
	year, _ := strconv.Atoi(q.Get("year"))

	cars := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		cars = append(cars, map[string]any{
			"make":         q.Get("make"),
			"model":        fmt.Sprintf("model%02d", i),
			"year":         year,
			"city_mpg":     20 + i,
			"highway_mpg":  30 + i,
			"transmission": "a",
			"drive":        "fwd",
			"fuel_type":    "gas",
			"class":        "compact car",
		})
	}
	_ = json.NewEncoder(w).Encode(cars)
}

// Queries returns a copy of the recorded queries
func (a *fakeAPI) Queries() []url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]url.Values(nil), a.queries...)
}

// WaitForQueries waits until at least n queries were received
func (a *fakeAPI) WaitForQueries(n int, timeout time.Duration) []url.Values {
	deadline := time.Now().Add(timeout)
	for {
		q := a.Queries()
		if len(q) >= n || time.Now().After(deadline) {
			return q
		}
		time.Sleep(25 * time.Millisecond)
	}
}
