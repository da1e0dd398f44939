package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/chinahist/places-mcp-server/internal/cbdb"
	"github.com/chinahist/places-mcp-server/internal/tgaz"
	"github.com/chinahist/places-mcp-server/metrics"
	"github.com/chinahist/places-mcp-server/tracing"
)

// HandlerRegistry maps tool specs to their concrete handler implementations
// on the upstream clients. It is built once in main and handed the server;
// nothing registers itself as a side effect.
type HandlerRegistry struct {
	cbdbClient *cbdb.Client
	tgazClient *tgaz.Client
	logger     *slog.Logger
}

// NewHandlerRegistry creates a handler registry.
func NewHandlerRegistry(cbdbClient *cbdb.Client, tgazClient *tgaz.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		cbdbClient: cbdbClient,
		tgazClient: tgazClient,
		logger:     logger,
	}
}

// RegisterAll registers every tool in AllTools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "SearchPlaces":
		register(h, server, tool, spec, h.cbdbClient.SearchPlacesMCP)
	case "QueryPeopleByPlace":
		register(h, server, tool, spec, h.cbdbClient.QueryPeopleByPlaceMCP)
	case "SearchPlacenames":
		register(h, server, tool, spec, h.tgazClient.SearchPlacenamesMCP)
	case "GetPlace":
		register(h, server, tool, spec, h.tgazClient.GetPlaceMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register wraps a client method with panic recovery, tracing, metrics, and
// logging, and adds it to the server.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (map[string]any, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, map[string]any, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.String("mcp.tool.source", spec.Source),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			return nil, nil, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args any, result map[string]any) {
	attrs := []any{"tool", spec.Name, "source", spec.Source}

	switch a := args.(type) {
	case cbdb.SearchPlacesArgs:
		attrs = append(attrs, "name", a.Name)
	case cbdb.QueryPeopleByPlaceArgs:
		attrs = append(attrs, "places", len(a.PeoplePlace), "place_types", len(a.PlaceType))
	case tgaz.SearchPlacenamesArgs:
		attrs = append(attrs, "name", a.Name)
	case tgaz.GetPlaceArgs:
		attrs = append(attrs, "place_id", a.PlaceID)
	}

	if total, ok := result["total"]; ok {
		attrs = append(attrs, "total", total)
	}
	if displayed, ok := result["count of displayed results"]; ok {
		attrs = append(attrs, "displayed", displayed)
	}
	if sysID, ok := result["sys_id"]; ok {
		attrs = append(attrs, "sys_id", sysID)
	}

	h.logger.Info("Tool executed", attrs...)
}
