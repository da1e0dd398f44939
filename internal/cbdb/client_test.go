package cbdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/chinahist/places-mcp-server/internal/apierr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	c := NewClient(server.URL)
	t.Cleanup(c.Close)
	return c, server
}

func TestSearchPlacesParams(t *testing.T) {
	var query url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/place_list" {
			t.Errorf("path = %q", r.URL.Path)
		}
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"total": 2, "data": []}`))
	})

	startTime := 960
	result, err := c.SearchPlaces(context.Background(), PlaceQuery{
		Name:       "杭州",
		Accurate:   MatchFuzzy,
		StartTime:  &startTime,
		Start:      1,
		ListLength: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := query.Get("name"); got != "杭州" {
		t.Errorf("name = %q", got)
	}
	if got := query.Get("accurate"); got != "1" {
		t.Errorf("accurate = %q", got)
	}
	if got := query.Get("start"); got != "1" {
		t.Errorf("start = %q", got)
	}
	if got := query.Get("list"); got != "10" {
		t.Errorf("list = %q", got)
	}
	if got := query.Get("startTime"); got != "960" {
		t.Errorf("startTime = %q", got)
	}
	if query.Has("endTime") {
		t.Error("endTime should be omitted when unset")
	}

	if result["total"] != float64(2) {
		t.Errorf("total = %v, want 2", result["total"])
	}
}

func TestSearchPlacesOmitsUnsetTimeBounds(t *testing.T) {
	var query url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.SearchPlaces(context.Background(), PlaceQuery{
		Name: "开封", Accurate: MatchExact, Start: 1, ListLength: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Has("startTime") || query.Has("endTime") {
		t.Errorf("time bounds should be absent, got %v", query)
	}
	if got := query.Get("accurate"); got != "0" {
		t.Errorf("accurate = %q, want 0 (always sent)", got)
	}
}

func TestSearchPlacesCaches(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"total": 1}`))
	})

	q := PlaceQuery{Name: "洛阳", Start: 1, ListLength: 10}
	for i := 0; i < 3; i++ {
		if _, err := c.SearchPlaces(context.Background(), q); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1", calls)
	}
}

func TestSearchPlacesPassesPayloadThrough(t *testing.T) {
	upstream := map[string]any{
		"total": float64(1),
		"data": []any{map[string]any{
			"place_id": float64(100513),
			"name":     "杭州",
			"x":        float64(120.16),
			"y":        float64(30.25),
		}},
		"source note": "CBDB place table",
	}
	body, _ := json.Marshal(upstream)

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	})

	result, err := c.SearchPlaces(context.Background(), PlaceQuery{Name: "杭州", Start: 1, ListLength: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := json.Marshal(result)
	want, _ := json.Marshal(upstream)
	if string(got) != string(want) {
		t.Errorf("payload mutated in transit:\n got %s\nwant %s", got, want)
	}
}

func TestQueryPeopleByPlacePayload(t *testing.T) {
	var rawPayload string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/query_place" {
			t.Errorf("path = %q", r.URL.Path)
		}
		rawPayload = r.URL.Query().Get("RequestPayload")
		_, _ = w.Write([]byte(`{"people": []}`))
	})

	_, err := c.QueryPeopleByPlace(context.Background(), PlacePersonFilter{
		PeoplePlace: []int{100513},
		PlaceType:   []string{PlaceTypeIndividual},
		UseDate:     0,
		Start:       1,
		List:        50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(rawPayload), &decoded); err != nil {
		t.Fatalf("RequestPayload is not valid JSON: %v", err)
	}

	// Every optional field must be present as an explicit null.
	for _, key := range []string{"dateType", "dateStartTime", "dateEndTime", "dynStart", "dynEnd"} {
		v, ok := decoded[key]
		if !ok {
			t.Errorf("key %q missing from payload, want explicit null", key)
			continue
		}
		if v != nil {
			t.Errorf("key %q = %v, want null", key, v)
		}
	}
	if decoded["start"] != float64(1) || decoded["list"] != float64(50) {
		t.Errorf("pagination = start %v list %v", decoded["start"], decoded["list"])
	}
}

func TestQueryPeopleByPlaceCaches(t *testing.T) {
	var calls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"people": []}`))
	})

	filter := PlacePersonFilter{
		PeoplePlace: []int{2928},
		PlaceType:   []string{PlaceTypeEntry},
		Start:       1,
		List:        50,
	}
	for i := 0; i < 2; i++ {
		if _, err := c.QueryPeopleByPlace(context.Background(), filter); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}
	if calls != 1 {
		t.Errorf("upstream called %d times, want 1", calls)
	}
}

func TestSearchPlacesStatusError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.SearchPlaces(context.Background(), PlaceQuery{Name: "x", Start: 1, ListLength: 10})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierr.IsKind(err, apierr.KindStatus) {
		t.Errorf("kind = %v, want status", err)
	}
	if want := "HTTP error status: 404"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestSearchPlacesDecodeError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})

	_, err := c.SearchPlaces(context.Background(), PlaceQuery{Name: "x", Start: 1, ListLength: 10})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierr.IsKind(err, apierr.KindDecode) {
		t.Errorf("kind = %v, want decode", err)
	}
	if !strings.HasPrefix(err.Error(), "Invalid response format: ") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestSearchPlacesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewClient(server.URL)
	defer c.Close()
	c.MaxRetries = 1

	_, err := c.SearchPlaces(context.Background(), PlaceQuery{Name: "x", Start: 1, ListLength: 10})
	if err == nil {
		t.Fatal("expected error")
	}
	if !apierr.IsKind(err, apierr.KindTransport) {
		t.Errorf("kind = %v, want transport", err)
	}
	if !strings.HasPrefix(err.Error(), "API request failed: ") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient("")
	defer c.Close()
	if c.baseURL == "" {
		t.Error("expected default base URL")
	}
	if strings.HasSuffix(c.baseURL, "/") {
		t.Errorf("base URL should have no trailing slash: %q", c.baseURL)
	}
}
