// Package search resolves the header search box into the view it renders.
package search

import (
	"strings"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
)

// MaxResults caps the number of cards shown for a search.
const MaxResults = 8

// State is the search controller state.
type State string

const (
	// StateIdle renders the page's own content.
	StateIdle State = "idle"
	// StateLoading renders the loading placeholder while a lookup is in flight.
	StateLoading State = "loading"
	// StateResults renders the result grid.
	StateResults State = "results"
	// StateEmpty renders the no-results placeholder with the term echoed back.
	StateEmpty State = "empty"
)

// View is what the search shell renders for one request.
type View struct {
	Term    string
	State   State
	Results []catalog.Character
}

// Active reports whether the search replaces the page content.
func (v View) Active() bool {
	return v.State != StateIdle
}

// NormalizeTerm trims surrounding whitespace from a raw query value.
func NormalizeTerm(raw string) string {
	return strings.TrimSpace(raw)
}

// Idle is the view for an empty search box.
func Idle() View {
	return View{State: StateIdle}
}

// Pending is the view while the lookup for term is outstanding.
func Pending(term string) View {
	term = NormalizeTerm(term)
	if term == "" {
		return Idle()
	}
	return View{Term: term, State: StateLoading}
}

// Resolve settles the lookup for term with its results.
func Resolve(term string, results []catalog.Character) View {
	term = NormalizeTerm(term)
	if term == "" {
		return Idle()
	}
	if len(results) == 0 {
		return View{Term: term, State: StateEmpty}
	}
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return View{Term: term, State: StateResults, Results: results}
}
