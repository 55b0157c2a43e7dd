// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"net/http"
	"time"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/requestmeta"
)

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// CatalogGateway reads characters from the external catalog.
type CatalogGateway interface {
	ListCharacters(ctx context.Context) ([]catalog.Character, error)
	FilterCharacters(ctx context.Context, name string) ([]catalog.Character, error)
	GetCharacter(ctx context.Context, id string) (catalog.Character, error)
}

// Dependencies carries shared runtime collaborators handed to every module.
type Dependencies struct {
	Catalog         CatalogGateway
	ResolveLanguage ResolveLanguage
	SchemePolicy    requestmeta.SchemePolicy
	// Now is the clock used for derived dates. Nil means time.Now.
	Now func() time.Time
}

// Clock returns deps.Now or time.Now.
func (d Dependencies) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules that can report their
// operational availability.
type HealthReporter interface {
	Healthy() bool
}
