package templates

import (
	"context"

	"github.com/a-h/templ"
)

// LinkButton renders an anchor styled as a button.
func LinkButton(label, href, variant string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		class := "button"
		if variant != "" {
			class += " " + variant
		}
		m.raw("<a")
		m.attr("class", class)
		m.url("href", href)
		m.raw(">")
		m.text(label)
		m.close("a")
	})
}

// ExternalLinkButton renders a button-styled anchor that opens a new tab.
func ExternalLinkButton(label, href string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<a class="button"`)
		m.url("href", href)
		m.raw(` target="_blank" rel="noopener noreferrer">`)
		m.text(label)
		m.close("a")
	})
}
