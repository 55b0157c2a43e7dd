// Package searchshell answers header searches on any page. A GET carrying a
// non-blank ?q= renders search results in place of the page content.
package searchshell

import (
	"context"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	module "github.com/louisbranch/charactercatalog/internal/services/web/module"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/charactercatalog/internal/services/web/platform/i18n"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/pagerender"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/weberror"
	"github.com/louisbranch/charactercatalog/internal/services/web/routepath"
	"github.com/louisbranch/charactercatalog/internal/services/web/search"
	webtemplates "github.com/louisbranch/charactercatalog/internal/services/web/templates"
)

// Shell resolves search terms against the catalog.
type Shell struct {
	deps   module.Dependencies
	logger *log.Logger
}

// New returns a Shell. A nil logger uses log.Default.
func New(deps module.Dependencies, logger *log.Logger) Shell {
	if logger == nil {
		logger = log.Default()
	}
	return Shell{deps: deps, logger: logger}
}

// Middleware intercepts GET and HEAD requests with a search term. Other
// requests reach next unchanged.
func (s Shell) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			term := search.NormalizeTerm(r.URL.Query().Get(routepath.SearchQueryKey))
			if term == "" {
				next.ServeHTTP(w, r)
				return
			}
			s.ServeSearch(w, r, term)
		})
	}
}

// ServeSearch renders the results page for term.
func (s Shell) ServeSearch(w http.ResponseWriter, r *http.Request, term string) {
	view, featured := s.Resolve(r.Context(), term)
	err := pagerender.WriteModulePage(w, r, s.deps, pagerender.ModulePage{
		Title:     "grid.search_results",
		TitleArgs: []any{view.Term},
		Fragment: func(loc webi18n.Localizer) templ.Component {
			return webtemplates.SearchResults(view, featured, loc)
		},
	})
	if err != nil {
		weberror.WriteModuleError(w, r, err, s.deps)
	}
}

// Resolve looks up term and, concurrently, the featured strip. A failed
// lookup is logged and resolves as no results.
func (s Shell) Resolve(ctx context.Context, term string) (search.View, []catalog.Character) {
	term = search.NormalizeTerm(term)
	if term == "" || s.deps.Catalog == nil {
		return search.Resolve(term, nil), nil
	}

	var results, all []catalog.Character
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.deps.Catalog.FilterCharacters(gctx, term)
		if err != nil {
			s.logger.Printf("search lookup failed: term=%q err=%v", term, err)
			return nil
		}
		results = found
		return nil
	})
	g.Go(func() error {
		listed, err := s.deps.Catalog.ListCharacters(gctx)
		if err != nil {
			s.logger.Printf("featured lookup failed: err=%v", err)
			return nil
		}
		all = listed
		return nil
	})
	_ = g.Wait()

	view := search.Resolve(term, results)
	if view.State != search.StateResults {
		return view, nil
	}
	return view, catalog.Featured(all, webtemplates.FeaturedCount)
}
