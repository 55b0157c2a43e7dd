package app

import (
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/httpx"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// Wrap decorates every module handler. Nil leaves handlers unchanged.
	Wrap httpx.Middleware
}
