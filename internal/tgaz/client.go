package tgaz

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
	"github.com/chinahist/places-mcp-server/internal/placeid"
	"github.com/chinahist/places-mcp-server/metrics"
)

const (
	// Source tag used in errors and metrics.
	Source = "tgaz"

	placenamePath = "/tgaz/placename"

	// DefaultCacheTTL for cached responses. The gazetteer corpus ends in
	// 1911; it does not change under us.
	DefaultCacheTTL = 5 * time.Minute
)

// Client provides access to the TGAZ API.
type Client struct {
	*base.Client
	baseURL string
}

// Option configures the Client (re-exported from base).
type Option = base.Option

// NewClient creates a TGAZ client. An empty baseURL selects the public
// endpoint; tests pass an httptest server URL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = config.DefaultTGAZBaseURL
	}
	return &Client{
		Client:  base.NewClient(opts...),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchPlacenames runs a faceted place-name search and paginates the result
// locally, since the upstream returns the full match list in one response.
func (c *Client) SearchPlacenames(ctx context.Context, q GazetteerQuery) (map[string]any, error) {
	params := url.Values{}
	params.Set("fmt", "json")
	params.Set("n", q.Name)

	// Facets are omitted when unset rather than sent empty.
	if q.Year != nil {
		params.Set("yr", strconv.Itoa(*q.Year))
	}
	if q.FeatureType != "" {
		params.Set("ftyp", q.FeatureType)
	}
	if q.Parent != "" {
		params.Set("p", q.Parent)
	}

	reqURL := c.baseURL + placenamePath + "?" + params.Encode()

	// The cache stores the unpaginated upstream response, keyed by the
	// facets alone, so different pages of the same search share one fetch.
	cacheKey := "placename:" + params.Encode()

	var payload map[string]any
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		payload = clone(cached.(map[string]any))
	} else {
		metrics.RecordCacheAccess(false)
		result, _, err := c.Dedup.Do(ctx, cacheKey, func() (any, error) {
			return c.get(ctx, "placename_search", reqURL)
		})
		if err != nil {
			return nil, err
		}
		c.Cache.Set(cacheKey, result.(map[string]any), DefaultCacheTTL)
		payload = clone(result.(map[string]any))
	}

	Paginate(payload, q.Start, q.ListLength)
	return payload, nil
}

// GetPlace fetches the full detail record for one place. The identifier is
// normalized to carry the source-system prefix before it is used in the
// lookup path.
func (c *Client) GetPlace(ctx context.Context, id string) (map[string]any, error) {
	id = placeid.NormalizeTGAZ(id)
	reqURL := c.baseURL + placenamePath + "/json/" + url.PathEscape(id)

	cacheKey := "place:" + id
	if cached, ok := c.Cache.Get(cacheKey); ok {
		metrics.RecordCacheAccess(true)
		return cached.(map[string]any), nil
	}
	metrics.RecordCacheAccess(false)

	result, _, err := c.Dedup.Do(ctx, cacheKey, func() (any, error) {
		return c.get(ctx, "place_detail", reqURL)
	})
	if err != nil {
		return nil, err
	}

	payload := result.(map[string]any)
	c.Cache.Set(cacheKey, payload, DefaultCacheTTL)
	return payload, nil
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

// clone shallow-copies a payload so pagination can mutate it without
// corrupting the cached unpaginated response.
func clone(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}
	return out
}
