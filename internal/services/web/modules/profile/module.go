package profile

import (
	"log"
	"net/http"

	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

// Module provides the saved profile page.
type Module struct {
	deps   module.Dependencies
	logger *log.Logger
}

// New returns a profile module. A nil logger uses log.Default.
func New(deps module.Dependencies, logger *log.Logger) Module {
	if logger == nil {
		logger = log.Default()
	}
	return Module{deps: deps, logger: logger}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "profile" }

// Mount wires profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.deps.Clock), m.deps, m.logger)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.UserProfile, Handler: mux}, nil
}
