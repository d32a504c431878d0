package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/agbru/ghlookup/internal/logging"
)

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	// MediaType is the Accept header value for the profile document.
	MediaType = "application/vnd.github+json"
	// APIVersion is sent in the X-GitHub-Api-Version header.
	APIVersion = "2022-11-28"
	// HeaderAPIVersion is the API version header name.
	HeaderAPIVersion = "X-GitHub-Api-Version"
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds the transport settings.
type ClientConfig struct {
	BaseURL   string
	Token     string
	UserAgent string
	// RequestsPerSecond throttles outgoing requests when > 0.
	RequestsPerSecond float64
	// Burst is the limiter bucket size; defaults to 1.
	Burst int
}

// Client fetches user profiles and classifies every outcome.
// It never retries and never caches.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient HTTPClient
	limiter    *rate.Limiter
	tracer     trace.Tracer
	logger     logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// WithTracer overrides the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) ClientOption {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a GitHub users client. A nil httpClient uses http.DefaultClient.
func NewClient(cfg ClientConfig, httpClient HTTPClient, opts ...ClientOption) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	c := &Client{
		baseURL:    baseURL,
		token:      cfg.Token,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		tracer:     otel.Tracer("github.com/agbru/ghlookup/internal/github"),
		logger:     logging.NewNopLogger(),
	}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string { return c.baseURL }

// UserURL returns the profile endpoint for handle.
func (c *Client) UserURL(handle string) string {
	return fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(handle))
}

// Fetch looks up handle. Cancelling ctx aborts the request; the abort is
// still classified so the caller can tell it apart from a real failure.
func (c *Client) Fetch(ctx context.Context, handle string) LookupResult {
	ctx, span := c.tracer.Start(ctx, "github.Client.Fetch",
		trace.WithAttributes(attribute.String("github.handle", handle)))
	defer span.End()

	start := time.Now()
	result := c.fetch(ctx, handle)

	span.SetAttributes(attribute.String("lookup.outcome", string(result.Outcome())))
	switch r := result.(type) {
	case HTTPFailure:
		span.SetAttributes(attribute.Int("http.status_code", r.StatusCode))
		span.SetStatus(codes.Error, r.Message)
	case NetworkFailure:
		if !r.Cancelled {
			span.SetStatus(codes.Error, r.Message)
		}
	}

	c.logger.Debug("github fetch settled",
		logging.String("handle", handle),
		logging.String("outcome", string(result.Outcome())),
		logging.Duration("latency", time.Since(start)),
	)
	return result
}

func (c *Client) fetch(ctx context.Context, handle string) LookupResult {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Classify(ctx, nil, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.UserURL(handle), nil)
	if err != nil {
		return Classify(ctx, nil, err)
	}
	req.Header.Set("Accept", MediaType)
	req.Header.Set(HeaderAPIVersion, APIVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	return Classify(ctx, resp, err)
}
