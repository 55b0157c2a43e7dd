// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	flashnotice "github.com/louisbranch/charactercatalog/internal/services/web/platform/flash"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/charactercatalog/internal/services/web/platform/i18n"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/charactercatalog/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	// Title is a copy catalog key, or literal text when it has no entry.
	Title     string
	TitleArgs []any
	// TitleText is used verbatim instead of Title when set.
	TitleText  string
	StatusCode int
	// Fragment builds the main content once the request localizer is known.
	Fragment func(loc webi18n.Localizer) templ.Component
}

// WriteModulePage writes a module page. HTMX requests receive only the main
// content; other requests receive the full document.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	var fragment templ.Component = templ.NopComponent
	if page.Fragment != nil {
		fragment = page.Fragment(loc)
	}
	notice := resolveFlashNotice(w, r, loc, deps)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	title := page.TitleText
	if title == "" {
		title = webtemplates.T(loc, page.Title, page.TitleArgs...)
	}

	var shell templ.Component
	if httpx.IsHTMXRequest(r) {
		shell = webtemplates.MainContent(notice)
	} else {
		shell = webtemplates.Layout(webtemplates.LayoutOptions{
			Title:       title,
			Lang:        lang,
			Loc:         loc,
			CurrentPath: currentPath(r),
			SearchTerm:  searchTerm(r),
			Notice:      notice,
		})
	}

	var buf bytes.Buffer
	if err := shell.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if httpx.IsHTMXRequest(r) {
		w.Header().Set("Vary", "HX-Request")
	}
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashNotice(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, deps module.Dependencies) *webtemplates.Notice {
	notice, ok := flashnotice.ReadAndClear(w, r, deps.SchemePolicy)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.Sprintf(notice.Key))
	if message == "" {
		return nil
	}
	return &webtemplates.Notice{Kind: string(notice.Kind), Message: message}
}

func currentPath(r *http.Request) string {
	if r == nil || r.URL == nil || r.URL.Path == "" {
		return routepath.Root
	}
	return r.URL.Path
}

func searchTerm(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return strings.TrimSpace(r.URL.Query().Get(routepath.SearchQueryKey))
}
