// Package catalog models characters served by the external catalog API.
package catalog

import (
	"strings"
	"time"
)

// Character is a read-only catalog entry. Values are never mutated after decoding.
type Character struct {
	ID              string
	Name            string
	ImageURL        string
	SourceURL       string
	UpdatedAt       time.Time
	Films           []string
	ShortFilms      []string
	TVShows         []string
	VideoGames      []string
	ParkAttractions []string
}

// Exists reports whether the character carries an identity.
func (c Character) Exists() bool {
	return strings.TrimSpace(c.ID) != "" || strings.TrimSpace(c.Name) != ""
}

// Category names one of the appearance lists a character belongs to.
type Category int

const (
	CategoryNone Category = iota
	CategoryFilms
	CategoryTVShows
	CategoryShortFilms
	CategoryVideoGames
	CategoryParkAttractions
)

// Label returns the card subtitle for the category.
func (c Category) Label() string {
	switch c {
	case CategoryFilms:
		return "Featured Films"
	case CategoryTVShows:
		return "Featured TV Shows"
	case CategoryShortFilms:
		return "Featured Short Films"
	case CategoryVideoGames:
		return "Featured Video Games"
	case CategoryParkAttractions:
		return "Featured Park Attractions"
	default:
		return ""
	}
}

// MessageKey returns the copy catalog key for the category label.
func (c Category) MessageKey() string {
	switch c {
	case CategoryFilms:
		return "card.featured_films"
	case CategoryTVShows:
		return "card.featured_tv_shows"
	case CategoryShortFilms:
		return "card.featured_short_films"
	case CategoryVideoGames:
		return "card.featured_video_games"
	case CategoryParkAttractions:
		return "card.featured_park_attractions"
	default:
		return ""
	}
}

// Highlight picks the first non-empty appearance list in priority order
// films, TV shows, short films, video games, park attractions, and returns
// it joined with ", ".
func Highlight(c Character) (Category, string) {
	ordered := []struct {
		category Category
		titles   []string
	}{
		{CategoryFilms, c.Films},
		{CategoryTVShows, c.TVShows},
		{CategoryShortFilms, c.ShortFilms},
		{CategoryVideoGames, c.VideoGames},
		{CategoryParkAttractions, c.ParkAttractions},
	}
	for _, entry := range ordered {
		if len(entry.titles) > 0 {
			return entry.category, strings.Join(entry.titles, ", ")
		}
	}
	return CategoryNone, ""
}

// Section is one titled appearance list on the character detail page.
type Section struct {
	Key    string
	Titles []string
}

// Sections returns the non-empty appearance lists in detail-page order.
func Sections(c Character) []Section {
	all := []Section{
		{Key: "detail.feature_films", Titles: c.Films},
		{Key: "detail.short_films", Titles: c.ShortFilms},
		{Key: "detail.tv_shows", Titles: c.TVShows},
		{Key: "detail.park_attractions", Titles: c.ParkAttractions},
		{Key: "detail.video_games", Titles: c.VideoGames},
	}
	sections := make([]Section, 0, len(all))
	for _, section := range all {
		if len(section.Titles) > 0 {
			sections = append(sections, section)
		}
	}
	return sections
}

// Featured returns up to n characters from the end of the list.
func Featured(characters []Character, n int) []Character {
	if n <= 0 || len(characters) == 0 {
		return nil
	}
	if len(characters) <= n {
		return characters
	}
	return characters[len(characters)-n:]
}
