// Package web parses web command configuration and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/charactercatalog/internal/platform/cmd"
	"github.com/louisbranch/charactercatalog/internal/platform/config"
	"github.com/louisbranch/charactercatalog/internal/services/web"
)

const (
	envFileKey     = "CHARACTER_CATALOG_ENV_FILE"
	defaultEnvFile = ".env"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr                 string        `env:"CHARACTER_CATALOG_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	CatalogBaseURL           string        `env:"CHARACTER_CATALOG_API_BASE_URL" envDefault:"https://api.disneyapi.dev"`
	CatalogTimeout           time.Duration `env:"CHARACTER_CATALOG_API_TIMEOUT" envDefault:"10s"`
	CatalogRequestsPerSecond float64       `env:"CHARACTER_CATALOG_API_RPS" envDefault:"10"`
	CatalogBurst             int           `env:"CHARACTER_CATALOG_API_BURST" envDefault:"20"`
	TrustForwardedProto      bool          `env:"CHARACTER_CATALOG_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig loads the optional env file, then environment defaults, then
// flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if err := config.LoadDotEnv(envFile()); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return cfg, nil
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.CatalogBaseURL, "catalog-base-url", cfg.CatalogBaseURL, "Character catalog API base URL")
	fs.DurationVar(&cfg.CatalogTimeout, "catalog-timeout", cfg.CatalogTimeout, "Per-call catalog API timeout")
	fs.Float64Var(&cfg.CatalogRequestsPerSecond, "catalog-rps", cfg.CatalogRequestsPerSecond, "Outbound catalog requests per second (0 disables limiting)")
	fs.IntVar(&cfg.CatalogBurst, "catalog-burst", cfg.CatalogBurst, "Outbound catalog request burst")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when resolving request scheme")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:                 cfg.HTTPAddr,
			CatalogBaseURL:           cfg.CatalogBaseURL,
			CatalogTimeout:           cfg.CatalogTimeout,
			CatalogRequestsPerSecond: cfg.CatalogRequestsPerSecond,
			CatalogBurst:             cfg.CatalogBurst,
			TrustForwardedProto:      cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func envFile() string {
	if value, ok := os.LookupEnv(envFileKey); ok {
		return strings.TrimSpace(value)
	}
	return defaultEnvFile
}
