package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
	"github.com/louisbranch/charactercatalog/internal/services/web/search"
)

// SearchIndicatorID is the element htmx marks while a search is in flight.
const SearchIndicatorID = "search-loading"

// HeaderOptions carries header state for one render.
type HeaderOptions struct {
	Loc         Localizer
	CurrentPath string
	SearchTerm  string
}

// Header renders the logo, live search input and profile link.
//
// The input re-requests the current page with ?q=. hx-sync replaces any
// request still in flight so only the latest term can render.
func Header(opts HeaderOptions) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		path := strings.TrimSpace(opts.CurrentPath)
		if path == "" {
			path = routepath.Root
		}
		m.open("header", "class", "site-header")

		m.open("a", "class", "logo", "href", routepath.Root, "aria-label", T(opts.Loc, "header.home"))
		m.raw("<img")
		m.attr("src", routepath.LogoImageURL)
		m.attr("alt", T(opts.Loc, "app.name"))
		m.raw(">")
		m.close("a")

		m.open("form", "class", "search", "role", "search", "method", "get", "action", path)
		m.raw(`<input type="search"`)
		m.attr("name", routepath.SearchQueryKey)
		m.attr("value", opts.SearchTerm)
		m.attr("placeholder", T(opts.Loc, "header.search_placeholder"))
		m.attr("aria-label", T(opts.Loc, "header.search_label"))
		m.attr("autocomplete", "off")
		m.attr("hx-get", path)
		m.attr("hx-trigger", "input changed delay:300ms, search")
		m.attr("hx-target", "#"+MainContentID)
		m.attr("hx-swap", "innerHTML")
		m.attr("hx-sync", "this:replace")
		m.attr("hx-push-url", "true")
		m.attr("hx-indicator", "#"+SearchIndicatorID)
		m.raw(">")
		m.close("form")

		m.open("a", "class", "profile-link", "href", routepath.UserProfile, "aria-label", T(opts.Loc, "header.profile"))
		m.raw(`<svg viewBox="0 0 24 24" width="22" height="22" aria-hidden="true"><circle cx="12" cy="8" r="4" fill="currentColor"/><path d="M4 21c1-4.5 4.5-7 8-7s7 2.5 8 7z" fill="currentColor"/></svg>`)
		m.close("a")

		m.close("header")
		m.render(ctx, Loading(search.Pending(opts.SearchTerm), opts.Loc))
	})
}
