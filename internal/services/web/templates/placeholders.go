package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
	"github.com/louisbranch/charactercatalog/internal/services/web/search"
)

// Loading renders the in-flight placeholder. It stays hidden until htmx marks
// it as the active request indicator.
func Loading(view search.View, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("div",
			"id", SearchIndicatorID,
			"class", "loading",
			"role", "status",
			"aria-live", "polite",
			"data-state", string(view.State),
		)
		m.text(T(loc, "common.loading"))
		m.close("div")
	})
}

// NoResultsView selects the placeholder variant.
type NoResultsView struct {
	Term        string
	Unavailable bool
}

// NoResults renders the empty-search or service-unavailable placeholder.
func NoResults(view NoResultsView, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if view.Unavailable {
			m.open("section", "class", "placeholder", "data-variant", "unavailable")
			m.element("h2", T(loc, "search.unavailable"))
			m.element("p", T(loc, "search.unavailable_detail"))
			m.raw("<img")
			m.attr("src", routepath.UnavailableImageURL)
			m.attr("alt", T(loc, "search.unavailable"))
			m.raw(">")
			m.close("section")
			return
		}
		m.open("section", "class", "placeholder", "data-variant", "no-results")
		m.element("h2", T(loc, "search.no_results"))
		if view.Term != "" {
			m.element("h3", view.Term, "class", "term")
		}
		m.raw("<img")
		m.attr("src", routepath.NoResultsImageURL)
		m.attr("alt", T(loc, "search.no_results"))
		m.raw(">")
		m.close("section")
	})
}

// SearchResults renders the content that replaces a page while a search is active.
func SearchResults(view search.View, featured []catalog.Character, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		switch view.State {
		case search.StateLoading:
			m.render(ctx, Loading(view, loc))
		case search.StateResults:
			m.render(ctx, CharacterGrid(T(loc, "grid.search_results", view.Term), view.Results, loc))
			m.render(ctx, FeaturedCharacters(featured, loc))
		case search.StateEmpty:
			m.render(ctx, NoResults(NoResultsView{Term: view.Term}, loc))
		}
	})
}
