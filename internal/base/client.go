// Package base provides the shared HTTP client infrastructure used by both
// upstream historical-database clients (CBDB and TGAZ).
package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/chinahist/places-mcp-server/internal/infra"
)

const (
	// DefaultTimeout for upstream API requests.
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL for cached upstream responses.
	DefaultCacheTTL = 5 * time.Minute

	// MaxConcurrentRequests bounds parallel calls to an upstream. Both
	// services are small academic installations; be polite.
	MaxConcurrentRequests = 5

	// DefaultUserAgent identifies this server when no override is set.
	DefaultUserAgent = "china-places-mcp-server/1.0 (github.com/chinahist/places-mcp-server)"
)

// Client bundles the HTTP client with caching, deduplication, circuit
// breaking, and a concurrency limit. Each upstream client embeds one.
type Client struct {
	HTTPClient     *http.Client
	Logger         *slog.Logger
	Cache          *infra.Cache
	Dedup          *infra.Deduplicator
	CircuitBreaker *infra.CircuitBreaker
	UserAgent      string
	MaxRetries     int

	semaphore chan struct{}
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// WithCache sets a custom cache.
func WithCache(cache *infra.Cache) Option {
	return func(c *Client) { c.Cache = cache }
}

// WithUserAgent sets the User-Agent header for upstream requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// WithMaxRetries sets the retry budget for failed requests.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.MaxRetries = n }
}

// NewClient creates a base client with default settings.
func NewClient(opts ...Option) *Client {
	c := &Client{
		HTTPClient:     newHTTPClient(DefaultTimeout),
		Logger:         slog.Default(),
		Cache:          infra.NewCache(infra.DefaultMaxCacheEntries),
		Dedup:          infra.NewDeduplicator(),
		CircuitBreaker: infra.NewCircuitBreaker(),
		UserAgent:      DefaultUserAgent,
		MaxRetries:     3,
		semaphore:      make(chan struct{}, MaxConcurrentRequests),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases resources held by the client.
func (c *Client) Close() {
	if c.Cache != nil {
		c.Cache.Close()
	}
}

// Get performs a GET against url with circuit breaking, a concurrency
// limit, and retries on transport and server errors. It returns the
// response body and status code; interpreting non-2xx statuses is the
// caller's job so each upstream can keep its own error semantics.
func (c *Client) Get(ctx context.Context, url string) ([]byte, int, error) {
	if !c.CircuitBreaker.Allow() {
		stats := c.CircuitBreaker.Stats()
		return nil, 0, &infra.ErrCircuitOpen{
			RetryAt:  stats.LastFailure.Add(30 * time.Second),
			Failures: stats.ConsecutiveFails,
		}
	}

	select {
	case c.semaphore <- struct{}{}:
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("waiting for request slot: %w", ctx.Err())
	}
	defer func() { <-c.semaphore }()

	maxRetries := c.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, 0, fmt.Errorf("context canceled during backoff: %w", ctx.Err())
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.UserAgent)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = err
			c.Logger.Warn("upstream request failed",
				"attempt", attempt+1,
				"url", url,
				"error", err)
			continue
		}

		body, err := readAndClose(resp)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if wait, ok := retryAfter(resp); ok {
				select {
				case <-time.After(wait):
				case <-ctx.Done():
					return nil, 0, ctx.Err()
				}
				continue
			}
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(string(body), 200))
			continue
		}

		return body, resp.StatusCode, nil
	}

	c.CircuitBreaker.RecordFailure()
	return nil, 0, lastErr
}

// RecordSuccess reports a successful upstream interaction to the breaker.
func (c *Client) RecordSuccess() {
	c.CircuitBreaker.RecordSuccess()
}

// RecordFailure reports a failed upstream interaction to the breaker.
func (c *Client) RecordFailure() {
	c.CircuitBreaker.RecordFailure()
}

// SemaphoreCap exposes the concurrency limit for tests.
func (c *Client) SemaphoreCap() int {
	return cap(c.semaphore)
}

func retryAfter(resp *http.Response) (time.Duration, bool) {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < 0 {
		return 0, false
	}
	return time.Duration(seconds) * time.Second, true
}

func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
