package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

func appErrorKeyPrefix(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "error.not_found"
	case http.StatusServiceUnavailable:
		return "error.unavailable"
	case http.StatusBadRequest:
		return "error.invalid_input"
	default:
		return "error.unknown"
	}
}

// AppErrorTitleKey returns the copy key for an error page title.
func AppErrorTitleKey(statusCode int) string {
	return appErrorKeyPrefix(statusCode) + ".title"
}

// AppErrorState renders the error page body.
func AppErrorState(statusCode int, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		prefix := appErrorKeyPrefix(statusCode)
		m.open("section", "id", "app-error-state", "class", "error-page", "data-status", http.StatusText(statusCode))
		m.element("h1", T(loc, AppErrorTitleKey(statusCode)))
		m.element("p", T(loc, prefix+".detail"))
		m.render(ctx, LinkButton(T(loc, "error.back_home"), routepath.Root, ""))
		m.close("section")
	})
}
