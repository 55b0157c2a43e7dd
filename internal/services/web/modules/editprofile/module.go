package editprofile

import (
	"log"
	"net/http"

	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

// Module provides the profile edit form and its submit endpoints.
type Module struct {
	deps   module.Dependencies
	logger *log.Logger
}

// New returns an edit-profile module. A nil logger uses log.Default.
func New(deps module.Dependencies, logger *log.Logger) Module {
	if logger == nil {
		logger = log.Default()
	}
	return Module{deps: deps, logger: logger}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "editprofile" }

// Mount wires edit-profile route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps, m.logger))
	return module.Mount{Prefix: routepath.EditUserProfile, Handler: mux}, nil
}
