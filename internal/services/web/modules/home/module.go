package home

import (
	"net/http"

	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

// Module provides the browse page at the site root.
type Module struct {
	gateway CatalogGateway
	deps    module.Dependencies
	shuffle ShuffleFunc
}

// New returns a home module reading from deps.Catalog.
func New(deps module.Dependencies) Module {
	if deps.Catalog == nil {
		return NewWithGateway(nil, deps)
	}
	return NewWithGateway(deps.Catalog, deps)
}

// NewWithGateway returns a home module with an explicit gateway.
func NewWithGateway(gateway CatalogGateway, deps module.Dependencies) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{gateway: gateway, deps: deps, shuffle: RandomShuffle}
}

// WithShuffle replaces the ordering applied to the catalog before sampling.
func (m Module) WithShuffle(shuffle ShuffleFunc) Module {
	if shuffle != nil {
		m.shuffle = shuffle
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Healthy reports whether the home module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires home route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.shuffle), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
