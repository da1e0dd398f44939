// China Places MCP Server - a Model Context Protocol server exposing the
// China Biographical Database (CBDB) and the Temporal Gazetteer (TGAZ) as
// tools for historical place and person research.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/chinahist/places-mcp-server/internal/base"
	"github.com/chinahist/places-mcp-server/internal/cbdb"
	"github.com/chinahist/places-mcp-server/internal/config"
	"github.com/chinahist/places-mcp-server/internal/tgaz"
	"github.com/chinahist/places-mcp-server/tools"
	"github.com/chinahist/places-mcp-server/tracing"
)

const (
	ServerName    = "china-places-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `China Places MCP Server provides tools for historical Chinese place and person research.

Available tools:
- cbdb_search_places: Search the China Biographical Database for places by name (exact or fuzzy)
- cbdb_query_people_by_place: Find people associated with CBDB locations and place-role types, with optional dynasty/year filtering
- tgaz_search_placenames: Faceted search of the Temporal Gazetteer (name, year, feature type, parent jurisdiction)
- tgaz_get_place: Full Temporal Gazetteer detail record for one place ID

Typical flow: search places first to obtain IDs, then query people or fetch place details.

Configure via environment variables:
- CBDB_BASE_URL / TGAZ_BASE_URL: Override the upstream endpoints
- HTTP_TIMEOUT, HTTP_MAX_RETRIES, USER_AGENT: Outbound request behavior
- OTEL_EXPORTER_OTLP_ENDPOINT: Enable OpenTelemetry trace export`

func main() {
	// Log to stderr; stdout carries the MCP protocol.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load(os.Getenv)

	ctx := context.Background()
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	httpClient := &http.Client{Timeout: cfg.Timeout}
	clientOpts := []base.Option{
		base.WithHTTPClient(httpClient),
		base.WithLogger(logger),
		base.WithUserAgent(cfg.UserAgent),
		base.WithMaxRetries(cfg.MaxRetries),
	}

	cbdbClient := cbdb.NewClient(cfg.CBDBBaseURL, clientOpts...)
	defer cbdbClient.Close()
	tgazClient := tgaz.NewClient(cfg.TGAZBaseURL, clientOpts...)
	defer tgazClient.Close()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	registry := tools.NewHandlerRegistry(cbdbClient, tgazClient, logger)
	registry.RegisterAll(server)

	logger.Info("Starting China Places MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"cbdb_url", cfg.CBDBBaseURL,
		"tgaz_url", cfg.TGAZBaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
