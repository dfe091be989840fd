// Package base provides shared HTTP client infrastructure for the CMS backends.
package base

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apierrors "github.com/olgasafonova/headless-cms-mcp-server/internal/errors"
	"github.com/olgasafonova/headless-cms-mcp-server/metrics"
	"github.com/olgasafonova/headless-cms-mcp-server/tracing"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the CMS
	DefaultUserAgent = "headless-cms-mcp-server/1.0 (github.com/olgasafonova/headless-cms-mcp-server)"
)

// Client issues single GET requests against one CMS endpoint and decodes JSON bodies.
// It performs no retries, caching or concurrency limiting.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Backend    string
	BaseURL    string
	UserAgent  string

	rest *resty.Client
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(client *Client) {
		if ua != "" {
			client.UserAgent = ua
		}
	}
}

// WithTimeout replaces the HTTP client with one using the given timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		if d > 0 {
			client.HTTPClient = newHTTPClient(d)
		}
	}
}

// NewClient creates a base client for the named backend rooted at baseURL
func NewClient(backend, baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		Backend:    backend,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		UserAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rest = resty.NewWithClient(c.HTTPClient).
		SetBaseURL(c.BaseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.UserAgent).
		SetLogger(&restyLogger{logger: c.Logger})

	return c
}

// RequestConfig configures a single GET request
type RequestConfig struct {
	Path     string            // relative to BaseURL, e.g. /wp/v2/posts
	Params   map[string]string // query parameters
	Resource string            // low-cardinality label for metrics and spans
}

// DoRequest performs one GET request and returns the body of a 2xx response.
// Transport failures and non-2xx statuses are returned as *apierrors.FetchError.
func (c *Client) DoRequest(ctx context.Context, cfg RequestConfig) ([]byte, int, error) {
	ctx, span := tracing.StartSpan(ctx, "cms.get")
	defer span.End()
	tracing.AddCMSAttributes(span, c.Backend, cfg.Resource)

	start := time.Now()
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(cfg.Params).
		Get(cfg.Path)
	duration := time.Since(start).Seconds()

	if err != nil {
		metrics.RecordAPICall(c.Backend, cfg.Resource, duration, false, "0")
		fetchErr := apierrors.NewFetchError(c.Backend, cfg.Path, 0, fmt.Errorf("request failed: %w", err))
		tracing.RecordError(span, fetchErr)
		span.SetStatus(codes.Error, fetchErr.Error())
		return nil, 0, fetchErr
	}

	status := resp.StatusCode()
	body := resp.Body()
	span.SetAttributes(attribute.Int("http.response.status_code", status))

	if !resp.IsSuccess() {
		metrics.RecordAPICall(c.Backend, cfg.Resource, duration, false, strconv.Itoa(status))
		fetchErr := apierrors.NewFetchError(c.Backend, cfg.Path, status,
			fmt.Errorf("unexpected response: %s", truncate(string(body), 200)))
		tracing.RecordError(span, fetchErr)
		span.SetStatus(codes.Error, fetchErr.Error())
		return nil, status, fetchErr
	}

	metrics.RecordAPICall(c.Backend, cfg.Resource, duration, true, "")
	metrics.RecordContentSize(c.Backend, len(body))
	span.SetStatus(codes.Ok, "")
	return body, status, nil
}

// GetJSON performs a GET request and decodes the JSON body into result
func (c *Client) GetJSON(ctx context.Context, cfg RequestConfig, result any) error {
	body, status, err := c.DoRequest(ctx, cfg)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return apierrors.NewFetchError(c.Backend, cfg.Path, status, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

// MergeParams returns a new map holding defaults overlaid with overrides.
// Neither input is modified.
func MergeParams(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// restyLogger routes resty's internal messages to slog
type restyLogger struct {
	logger *slog.Logger
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "resty")
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with tuned transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
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
