package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/strapi"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/wordpress"
	"github.com/olgasafonova/headless-cms-mcp-server/metrics"
	"github.com/olgasafonova/headless-cms-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
// A nil client disables that backend's tools.
type HandlerRegistry struct {
	wpClient     *wordpress.Client
	strapiClient *strapi.Client
	logger       *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(wpClient *wordpress.Client, strapiClient *strapi.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		wpClient:     wpClient,
		strapiClient: strapiClient,
		logger:       logger,
	}
}

// Enabled reports whether backend has a configured client
func (h *HandlerRegistry) Enabled(backend string) bool {
	switch backend {
	case BackendWordPress:
		return h.wpClient != nil
	case BackendStrapi:
		return h.strapiClient != nil
	default:
		return false
	}
}

// RegisterAll registers the tools of every configured backend and returns
// how many were registered.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) int {
	count := 0
	for _, spec := range AllTools {
		if !h.Enabled(spec.Backend) {
			continue
		}
		if h.registerByName(server, spec) {
			count++
		}
	}
	h.logger.Info("Registered tools", "count", count, "available", len(AllTools))
	return count
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)

	switch spec.Method {
	// WordPress tools
	case "WPGetPosts":
		register(h, server, tool, spec, h.wpClient.GetPostsMCP)
	case "WPGetPost":
		register(h, server, tool, spec, h.wpClient.GetPostMCP)
	case "WPGetPages":
		register(h, server, tool, spec, h.wpClient.GetPagesMCP)
	case "WPGetPage":
		register(h, server, tool, spec, h.wpClient.GetPageMCP)

	// Strapi tools
	case "StrapiGetPosts":
		register(h, server, tool, spec, h.strapiClient.GetPostsMCP)
	case "StrapiGetPost":
		register(h, server, tool, spec, h.strapiClient.GetPostMCP)
	case "StrapiGetPages":
		register(h, server, tool, spec, h.strapiClient.GetPagesMCP)
	case "StrapiGetPage":
		register(h, server, tool, spec, h.strapiClient.GetPageMCP)
	case "StrapiGetImage":
		register(h, server, tool, spec, h.strapiClient.GetImageMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
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

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (_ *mcp.CallToolResult, result Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(
			attribute.String("mcp.tool.backend", spec.Backend),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err = method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers and turns them into
// a tool error.
func (h *HandlerRegistry) recoverPanic(toolName string, err *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		if err != nil {
			*err = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "backend", spec.Backend}

	switch a := args.(type) {
	// WordPress args
	case wordpress.GetPostsArgs:
		attrs = append(attrs, "search", a.Search, "per_page", a.PerPage)
	case wordpress.GetPostArgs:
		attrs = append(attrs, "slug", a.Slug)
	case wordpress.GetPagesArgs:
		attrs = append(attrs, "search", a.Search, "per_page", a.PerPage)
	case wordpress.GetPageArgs:
		attrs = append(attrs, "slug", a.Slug)
	// Strapi args
	case strapi.GetPostsArgs:
		attrs = append(attrs, "search", a.Search, "per_page", a.PerPage)
	case strapi.GetPostArgs:
		attrs = append(attrs, "id", a.ID)
	case strapi.GetPagesArgs:
		attrs = append(attrs, "search", a.Search, "per_page", a.PerPage)
	case strapi.GetPageArgs:
		attrs = append(attrs, "id", a.ID)
	case strapi.GetImageArgs:
		attrs = append(attrs, "post_id", a.PostID, "field", a.Field)
	}

	switch r := result.(type) {
	case wordpress.GetPostsResult:
		attrs = append(attrs, "results_count", r.Count)
	case wordpress.GetPostResult:
		attrs = append(attrs, "found", r.Found)
	case wordpress.GetPagesResult:
		attrs = append(attrs, "results_count", r.Count)
	case wordpress.GetPageResult:
		attrs = append(attrs, "found", r.Found)
	case strapi.GetPostsResult:
		attrs = append(attrs, "results_count", r.Count)
	case strapi.GetPostResult:
		attrs = append(attrs, "found", r.Found, "fields", len(r.Fields))
	case strapi.GetPagesResult:
		attrs = append(attrs, "results_count", r.Count)
	case strapi.GetPageResult:
		attrs = append(attrs, "found", r.Found)
	case strapi.GetImageResult:
		attrs = append(attrs, "found", r.Found)
	}

	h.logger.Info("Tool executed", attrs...)
}
