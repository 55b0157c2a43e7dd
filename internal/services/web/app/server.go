package app

import "net/http"

// BuildRootHandler composes a root mux from the configured modules.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		Modules: cfg.Modules,
		Wrap:    cfg.Wrap,
	})
}
