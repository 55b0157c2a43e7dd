package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/httpx"
)

// ComposeInput carries the modules to mount and the shared wrapper.
type ComposeInput struct {
	Modules []module.Module
	Wrap    httpx.Middleware
}

// Compose builds a root mux from modules. A prefix ending in "/" owns its
// subtree. Any other prefix owns the exact path and its subtree, so
// "/edit-user-profile" also serves "/edit-user-profile/validate" without a
// trailing-slash redirect.
func Compose(input ComposeInput) (*http.ServeMux, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		handler := mount.Handler
		if input.Wrap != nil {
			handler = input.Wrap(handler)
		}
		for _, pattern := range mountPatterns(prefix) {
			if previous, ok := seen[pattern]; ok {
				return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
			}
			seen[pattern] = feature.ID()
			root.Handle(pattern, handler)
		}
	}
	return root, nil
}

func mountPatterns(prefix string) []string {
	if strings.HasSuffix(prefix, "/") {
		return []string{prefix}
	}
	return []string{prefix, prefix + "/"}
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if strings.ContainsAny(prefix, "{} ") {
		return fmt.Errorf("prefix must be a literal path")
	}
	return nil
}
