// Package config loads server configuration from environment variables.
package config

import (
	"strconv"
	"time"
)

// Defaults for the two upstream endpoints. Both are public services; the
// env overrides exist mainly for tests and mirrors.
const (
	DefaultCBDBBaseURL = "https://input.cbdb.fas.harvard.edu"
	DefaultTGAZBaseURL = "http://tgaz.fudan.edu.cn"

	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// Config holds connection settings for the upstream historical databases.
type Config struct {
	// CBDBBaseURL is the China Biographical Database API endpoint.
	CBDBBaseURL string

	// TGAZBaseURL is the Temporal Gazetteer endpoint.
	TGAZBaseURL string

	// Timeout for upstream API requests.
	Timeout time.Duration

	// MaxRetries for failed requests.
	MaxRetries int

	// UserAgent identifies this server to the upstreams.
	UserAgent string
}

// Load reads configuration from the environment, falling back to defaults.
// getenv is injectable for tests; pass os.Getenv in production.
func Load(getenv func(string) string) *Config {
	cfg := &Config{
		CBDBBaseURL: DefaultCBDBBaseURL,
		TGAZBaseURL: DefaultTGAZBaseURL,
		Timeout:     DefaultTimeout,
		MaxRetries:  DefaultMaxRetries,
		UserAgent:   "china-places-mcp-server/1.0 (github.com/chinahist/places-mcp-server)",
	}

	if v := getenv("CBDB_BASE_URL"); v != "" {
		cfg.CBDBBaseURL = v
	}
	if v := getenv("TGAZ_BASE_URL"); v != "" {
		cfg.TGAZBaseURL = v
	}
	if v := getenv("HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if v := getenv("HTTP_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	return cfg
}
