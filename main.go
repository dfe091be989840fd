// Headless CMS MCP Server - A Model Context Protocol server for WordPress
// and ACF-enabled headless CMS content
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/config"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/strapi"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/wordpress"
	"github.com/olgasafonova/headless-cms-mcp-server/tools"
	"github.com/olgasafonova/headless-cms-mcp-server/tracing"
)

const (
	ServerName    = "headless-cms-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Headless CMS MCP Server provides read-only access to site content.

WordPress tools (enabled when CMS_WORDPRESS_URL is set) look records up by slug:
- wordpress_get_posts, wordpress_get_post, wordpress_get_pages, wordpress_get_page

CMS tools (enabled when CMS_STRAPI_URL is set) look records up by numeric id and return ACF custom fields:
- strapi_get_posts, strapi_get_post, strapi_get_pages, strapi_get_page
- strapi_get_image: resolve an ACF image field to a URL

Unreachable backends yield empty lists or found=false rather than errors.`

func main() {
	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	traceCfg := tracing.DefaultConfig()
	traceCfg.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, traceCfg)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	wpClient, strapiClient := newClients(cfg, logger)
	server := newServer(wpClient, strapiClient, logger)

	if cfg.MetricsAddr != "" {
		metricsServer := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           newMetricsRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("Serving metrics", "addr", cfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	logger.Info("Starting Headless CMS MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"wordpress_url", cfg.WordPressURL,
		"strapi_url", cfg.StrapiURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// newClients builds a client per configured backend. Unconfigured backends are nil.
func newClients(cfg *config.Config, logger *slog.Logger) (*wordpress.Client, *strapi.Client) {
	var wpClient *wordpress.Client
	if cfg.WordPressURL != "" {
		wpClient = wordpress.NewClient(cfg.WordPressURL,
			wordpress.WithLogger(logger),
			wordpress.WithTimeout(cfg.Timeout),
			wordpress.WithUserAgent(cfg.UserAgent),
		)
	}

	var strapiClient *strapi.Client
	if cfg.StrapiURL != "" {
		strapiClient = strapi.NewClient(cfg.StrapiURL,
			strapi.WithLogger(logger),
			strapi.WithTimeout(cfg.Timeout),
			strapi.WithUserAgent(cfg.UserAgent),
		)
	}

	return wpClient, strapiClient
}

// newServer creates the MCP server with the tools of every configured backend
func newServer(wpClient *wordpress.Client, strapiClient *strapi.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	tools.NewHandlerRegistry(wpClient, strapiClient, logger).RegisterAll(server)
	return server
}

// newMetricsRouter serves Prometheus metrics and a liveness probe
func newMetricsRouter() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)
	return r
}
