package templates

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
)

// HomeView is the browse page model.
type HomeView struct {
	Characters []catalog.Character
	Featured   []catalog.Character
	// Failure selects a placeholder instead of the grid when set.
	Failure *NoResultsView
}

// HomePage renders the shuffled grid with the featured strip, or the
// placeholder when the catalog could not be loaded.
func HomePage(view HomeView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		if view.Failure != nil {
			m.render(ctx, NoResults(*view.Failure, loc))
			return
		}
		m.render(ctx, CharacterGrid("", view.Characters, loc))
		m.render(ctx, FeaturedCharacters(view.Featured, loc))
	})
}

// CharacterDetailView is the detail page model.
type CharacterDetailView struct {
	Character catalog.Character
	Featured  []catalog.Character
}

// CharacterUpdatedLayout formats the detail page "Last Updated" date.
const CharacterUpdatedLayout = "1/2/2006"

// CharacterDetail renders one character with its appearance sections.
func CharacterDetail(view CharacterDetailView, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		c := view.Character
		m.open("article", "class", "detail", "data-character-id", c.ID)
		m.raw("<img")
		m.url("src", CharacterImageURL(c))
		m.attr("alt", c.Name)
		m.raw(">")
		m.open("div", "class", "detail-info")
		m.element("h1", c.Name)
		if !c.UpdatedAt.IsZero() {
			m.element("p", T(loc, "detail.last_updated")+" "+c.UpdatedAt.Format(CharacterUpdatedLayout), "class", "updated")
		}
		for _, section := range catalog.Sections(c) {
			m.element("h2", T(loc, section.Key))
			m.raw("<ul>")
			for _, title := range section.Titles {
				m.element("li", title)
			}
			m.raw("</ul>")
		}
		if c.SourceURL != "" {
			m.render(ctx, ExternalLinkButton(T(loc, "detail.explore_more"), c.SourceURL))
		}
		m.close("div")
		m.close("article")
		m.render(ctx, FeaturedCharacters(view.Featured, loc))
	})
}
