package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/louisbranch/charactercatalog/internal/platform/timeouts"
	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
)

// DefaultBaseURL is the public catalog endpoint.
const DefaultBaseURL = "https://api.disneyapi.dev"

const (
	characterPath    = "/character"
	maxResponseBytes = 8 << 20
	tracerName       = "github.com/louisbranch/charactercatalog/internal/services/web/integration/catalogapi"
)

// Config configures a Client.
type Config struct {
	BaseURL string
	// Timeout bounds each call. Zero uses timeouts.CatalogRequest.
	Timeout time.Duration
	// RequestsPerSecond limits outbound calls. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
	// Transport overrides the base round tripper, mainly for tests.
	Transport http.RoundTripper
	Logger    *log.Logger
}

// Client calls the catalog API.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
	tracer  trace.Tracer
}

// New builds a Client from cfg.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("catalog base url %q must be http or https", raw)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("catalog base url %q is missing a host", raw)
	}
	base.Path = strings.TrimRight(base.Path, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.CatalogRequest
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		limiter: limiter,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// ListCharacters returns the first page of all characters.
func (c *Client) ListCharacters(ctx context.Context) ([]catalog.Character, error) {
	return c.fetch(ctx, "list", c.endpoint(characterPath, nil))
}

// FilterCharacters returns characters whose name matches name.
func (c *Client) FilterCharacters(ctx context.Context, name string) ([]catalog.Character, error) {
	query := url.Values{}
	query.Set("name", name)
	return c.fetch(ctx, "filter", c.endpoint(characterPath, query))
}

// GetCharacter returns the character with id. An empty payload is reported
// as not found.
func (c *Client) GetCharacter(ctx context.Context, id string) (catalog.Character, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return catalog.Character{}, apperrors.E(apperrors.KindNotFound, "character id is required")
	}
	characters, err := c.fetch(ctx, "get", c.endpoint(characterPath+"/"+url.PathEscape(id), nil))
	if err != nil {
		return catalog.Character{}, err
	}
	if len(characters) == 0 || !characters[0].Exists() {
		return catalog.Character{}, apperrors.E(apperrors.KindNotFound, "character not found")
	}
	return characters[0], nil
}

func (c *Client) endpoint(escapedPath string, query url.Values) string {
	endpoint := c.baseURL.Scheme + "://" + c.baseURL.Host + c.baseURL.EscapedPath() + escapedPath
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

func (c *Client) fetch(ctx context.Context, call string, endpoint string) ([]catalog.Character, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := c.tracer.Start(ctx, "catalogapi."+call, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("catalog.call", call))

	characters, err := c.do(ctx, endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.KindOf(err)))
		c.logger.Printf("catalog %s failed: url=%s kind=%s err=%v", call, endpoint, apperrors.KindOf(err), err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("catalog.results", len(characters)))
	return characters, nil
}

func (c *Client) do(ctx context.Context, endpoint string) ([]catalog.Character, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apperrors.Wrap(apperrors.KindUnavailable, "catalog rate limit wait", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnknown, "build catalog request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnavailable, "catalog request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, apperrors.E(apperrors.KindForUpstreamStatus(resp.StatusCode), "catalog returned "+resp.Status)
	}

	var body envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Wrap(apperrors.KindUnavailable, "read catalog response", err)
		}
		return nil, apperrors.Wrap(apperrors.KindUnknown, "decode catalog response", err)
	}
	return toDomain(body.Data), nil
}
