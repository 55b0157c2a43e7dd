package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/charactercatalog/internal/platform/timeouts"
	webapp "github.com/louisbranch/charactercatalog/internal/services/web/app"
	"github.com/louisbranch/charactercatalog/internal/services/web/integration/catalogapi"
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/modules"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/httpx"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/observability"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/searchshell"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
	webstatic "github.com/louisbranch/charactercatalog/internal/services/web/static"
)

// otelOperation names the server span emitted for every request.
const otelOperation = "character-catalog-web"

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr                 string
	CatalogBaseURL           string
	CatalogTimeout           time.Duration
	CatalogRequestsPerSecond float64
	CatalogBurst             int
	TrustForwardedProto      bool
	// Catalog replaces the HTTP catalog client, mainly for tests.
	Catalog module.CatalogGateway
	// Logger receives request and module logs. Nil uses log.Default.
	Logger *log.Logger
	// Now is the clock for derived profile dates. Nil uses time.Now.
	Now func() time.Time
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: static assets, health, and every
// default module behind the search shell.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	gateway := cfg.Catalog
	if gateway == nil {
		client, err := catalogapi.New(catalogapi.Config{
			BaseURL:           cfg.CatalogBaseURL,
			Timeout:           cfg.CatalogTimeout,
			RequestsPerSecond: cfg.CatalogRequestsPerSecond,
			Burst:             cfg.CatalogBurst,
			Logger:            logger,
		})
		if err != nil {
			return nil, fmt.Errorf("init catalog client: %w", err)
		}
		gateway = client
	}
	deps := module.Dependencies{
		Catalog:      gateway,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Now:          cfg.Now,
	}

	features := modules.DefaultModules(deps, logger)
	shell := searchshell.New(deps, logger)
	h, err := webapp.BuildRootHandler(webapp.Config{
		Modules: features,
		Wrap:    shell.Middleware(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(webstatic.FS)))
	rootMux.Handle(http.MethodGet+" "+routepath.Health, healthHandler(features))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		withTracing(),
	), nil
}

func withTracing() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, otelOperation)
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening: addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
