package cbdb

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chinahist/places-mcp-server/internal/apierr"
	"github.com/chinahist/places-mcp-server/internal/base"
	"github.com/chinahist/places-mcp-server/internal/config"
	"github.com/chinahist/places-mcp-server/metrics"
)

const (
	// Source tag used in errors and metrics.
	Source = "cbdb"

	placeListPath  = "/api/place_list"
	queryPlacePath = "/api/query_place"

	// DefaultCacheTTL for cached responses. CBDB is a slowly curated
	// historical corpus; five minutes is conservative.
	DefaultCacheTTL = 5 * time.Minute
)

// Client provides access to the CBDB API.
type Client struct {
	*base.Client
	baseURL string
}

// Option configures the Client (re-exported from base).
type Option = base.Option

// NewClient creates a CBDB client. An empty baseURL selects the public
// endpoint; tests pass an httptest server URL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = config.DefaultCBDBBaseURL
	}
	return &Client{
		Client:  base.NewClient(opts...),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchPlaces looks up places by name against the place-listing endpoint
// and returns the decoded payload unmodified. Pagination is server-side.
func (c *Client) SearchPlaces(ctx context.Context, q PlaceQuery) (map[string]any, error) {
	params := url.Values{}
	params.Set("name", q.Name)
	params.Set("accurate", strconv.Itoa(q.Accurate))
	params.Set("start", strconv.Itoa(q.Start))
	params.Set("list", strconv.Itoa(q.ListLength))

	// Optional time bounds are omitted when unset; the endpoint treats a
	// missing bound as unbounded.
	if q.StartTime != nil {
		params.Set("startTime", strconv.Itoa(*q.StartTime))
	}
	if q.EndTime != nil {
		params.Set("endTime", strconv.Itoa(*q.EndTime))
	}

	reqURL := c.baseURL + placeListPath + "?" + params.Encode()

	cacheKey := "place_list:" + params.Encode()
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		return cached.(map[string]any), nil
	}
	metrics.RecordCacheAccess(false)

	result, _, err := c.Dedup.Do(ctx, cacheKey, func() (any, error) {
		return c.get(ctx, "place_list", reqURL)
	})
	if err != nil {
		return nil, err
	}

	payload := result.(map[string]any)
	c.Cache.Set(cacheKey, payload, DefaultCacheTTL)
	return payload, nil
}

// QueryPeopleByPlace queries people associated with the given locations and
// place-role types. The whole filter travels as one JSON-encoded query
// parameter on a GET request; that is the upstream's contract, filter
// semantics notwithstanding.
func (c *Client) QueryPeopleByPlace(ctx context.Context, filter PlacePersonFilter) (map[string]any, error) {
	payload, err := json.Marshal(filter)
	if err != nil {
		return nil, apierr.Unexpected(Source, err)
	}

	reqURL := c.baseURL + queryPlacePath + "?RequestPayload=" + url.QueryEscape(string(payload))

	cacheKey := "query_place:" + string(payload)
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		return cached.(map[string]any), nil
	}
	metrics.RecordCacheAccess(false)

	result, _, err := c.Dedup.Do(ctx, cacheKey, func() (any, error) {
		return c.get(ctx, "query_place", reqURL)
	})
	if err != nil {
		return nil, err
	}

	doc := result.(map[string]any)
	c.Cache.Set(cacheKey, doc, DefaultCacheTTL)
	return doc, nil
}

// get issues one GET and classifies the outcome into the typed error model.
func (c *Client) get(ctx context.Context, action, reqURL string) (map[string]any, error) {
	start := time.Now()
	body, status, err := c.Get(ctx, reqURL)
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordUpstreamCall(Source, action, duration, false, apierr.KindTransport.String())
		return nil, apierr.Transport(Source, err)
	}

	if status >= 400 {
		// The upstream answered, so this is not a service health issue.
		c.RecordSuccess()
		metrics.RecordUpstreamCall(Source, action, duration, false, apierr.KindStatus.String())
		return nil, apierr.Status(Source, status)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		c.RecordSuccess()
		metrics.RecordUpstreamCall(Source, action, duration, false, apierr.KindDecode.String())
		return nil, apierr.Decode(Source, err)
	}

	c.RecordSuccess()
	metrics.RecordUpstreamCall(Source, action, duration, true, "")
	return payload, nil
}
