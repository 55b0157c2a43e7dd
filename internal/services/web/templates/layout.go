package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
)

// HTMXScriptURL loads the htmx runtime used by live search and form updates.
const HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// MainContentID is the element swapped by htmx navigation and search.
const MainContentID = "main-content"

// Notice is a one-time banner shown above page content.
type Notice struct {
	Kind    string
	Message string
}

// LayoutOptions carries the shell state for a full-page render.
type LayoutOptions struct {
	Title       string
	Lang        string
	Loc         Localizer
	CurrentPath string
	SearchTerm  string
	Notice      *Notice
}

// ComposePageTitle appends the app name to a page title.
func ComposePageTitle(loc Localizer, title string) string {
	title = strings.TrimSpace(title)
	appName := T(loc, "app.name")
	if title == "" || title == appName {
		return appName
	}
	return T(loc, "title.page", title)
}

// Layout renders the full document with header, footer and the children as
// main content.
func Layout(opts LayoutOptions) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		lang := strings.TrimSpace(opts.Lang)
		if lang == "" {
			lang = "en-US"
		}
		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", lang)
		m.raw("<head>")
		m.raw(`<meta charset="utf-8">`)
		m.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.element("title", ComposePageTitle(opts.Loc, opts.Title))
		m.raw(`<link rel="stylesheet"`)
		m.attr("href", routepath.StylesheetURL)
		m.raw(">")
		m.raw("<script defer")
		m.attr("src", HTMXScriptURL)
		m.raw("></script>")
		m.raw("</head>")
		m.raw("<body>")
		m.render(ctx, Header(HeaderOptions{
			Loc:         opts.Loc,
			CurrentPath: opts.CurrentPath,
			SearchTerm:  opts.SearchTerm,
		}))
		m.open("main", "id", MainContentID)
		m.render(ctx, NoticeBanner(opts.Notice))
		m.renderChildren(ctx)
		m.close("main")
		m.render(ctx, Footer(opts.Loc))
		m.raw("</body></html>")
	})
}

// MainContent renders only what belongs inside the main element, for htmx swaps.
func MainContent(notice *Notice) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.render(ctx, NoticeBanner(notice))
		m.renderChildren(ctx)
	})
}

// NoticeBanner renders a flash notice, or nothing.
func NoticeBanner(notice *Notice) templ.Component {
	return component(func(_ context.Context, m *markup) {
		if notice == nil || strings.TrimSpace(notice.Message) == "" {
			return
		}
		m.element("div", notice.Message, "class", "notice "+notice.Kind, "role", "status")
	})
}

// Footer renders the disclaimer shown on every page.
func Footer(loc Localizer) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("footer", "class", "site-footer")
		m.element("p", T(loc, "footer.disclaimer"))
		m.close("footer")
	})
}
