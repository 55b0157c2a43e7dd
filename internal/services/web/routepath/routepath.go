// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                     = "/"
	Health                   = "/up"
	StaticPrefix             = "/static/"
	CharacterPrefix          = "/character/"
	CharacterPattern         = CharacterPrefix + "{id}"
	UserProfile              = "/user-profile"
	EditUserProfile          = "/edit-user-profile"
	EditUserProfileValidate  = EditUserProfile + "/validate"
	SearchQueryKey           = "q"
	DefaultCharacterImageURL = StaticPrefix + "images/default-image.svg"
	NoResultsImageURL        = StaticPrefix + "images/no-results.svg"
	UnavailableImageURL      = StaticPrefix + "images/unavailable.svg"
	LogoImageURL             = StaticPrefix + "images/logo.svg"
	StylesheetURL            = StaticPrefix + "app.css"
)

// Character returns the detail route for a character id.
func Character(id string) string {
	return CharacterPrefix + escapeSegment(id)
}

// WithSearch returns path with the search term attached, or path unchanged
// for a blank term.
func WithSearch(path string, term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return path
	}
	return path + "?" + url.Values{SearchQueryKey: {term}}.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
