package character

import (
	"net/http"

	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

// Module provides the character detail routes.
type Module struct {
	gateway CatalogGateway
	deps    module.Dependencies
}

// New returns a character module reading from deps.Catalog.
func New(deps module.Dependencies) Module {
	if deps.Catalog == nil {
		return NewWithGateway(nil, deps)
	}
	return NewWithGateway(deps.Catalog, deps)
}

// NewWithGateway returns a character module with an explicit gateway.
func NewWithGateway(gateway CatalogGateway, deps module.Dependencies) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return Module{gateway: gateway, deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "character" }

// Healthy reports whether the character module has an operational gateway.
func (m Module) Healthy() bool {
	_, unavailable := m.gateway.(unavailableGateway)
	return m.gateway != nil && !unavailable
}

// Mount wires character route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.CharacterPrefix, Handler: mux}, nil
}
