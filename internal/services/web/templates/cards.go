package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

// FeaturedCount is how many characters the featured strip shows.
const FeaturedCount = 4

// CharacterImageURL returns the character image or the default placeholder.
func CharacterImageURL(c catalog.Character) string {
	if url := strings.TrimSpace(c.ImageURL); url != "" {
		return url
	}
	return routepath.DefaultCharacterImageURL
}

// CharacterCard renders one character summary with its highlighted category.
func CharacterCard(c catalog.Character, loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		category, description := catalog.Highlight(c)
		m.open("article", "class", "card", "data-character-id", c.ID)
		m.raw("<img")
		m.url("src", CharacterImageURL(c))
		m.attr("alt", T(loc, "card.image_alt", c.Name))
		m.attr("loading", "lazy")
		m.raw(">")
		m.open("div", "class", "card-body")
		m.element("h3", c.Name)
		if category != catalog.CategoryNone {
			m.element("p", T(loc, category.MessageKey()), "class", "card-subtitle")
			m.element("p", description, "class", "card-description")
		}
		m.open("a", "class", "card-action", "href", routepath.Character(c.ID))
		m.text(T(loc, "card.view_profile"))
		m.close("a")
		m.close("div")
		m.close("article")
	})
}

// CharacterGrid renders cards under an optional title.
func CharacterGrid(title string, characters []catalog.Character, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("section", "class", "grid-section")
		if strings.TrimSpace(title) != "" {
			m.element("h2", title, "class", "grid-title")
		}
		m.open("div", "class", "grid")
		for _, c := range characters {
			m.render(ctx, CharacterCard(c, loc))
		}
		m.close("div")
		m.close("section")
	})
}

// FeaturedCharacters renders the featured strip, or nothing when empty.
func FeaturedCharacters(characters []catalog.Character, loc Localizer) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		if len(characters) == 0 {
			return
		}
		m.open("section", "class", "featured")
		m.element("h2", T(loc, "grid.featured"), "class", "grid-title")
		m.open("div", "class", "grid")
		for _, c := range characters {
			m.render(ctx, CharacterCard(c, loc))
		}
		m.close("div")
		m.close("section")
	})
}
