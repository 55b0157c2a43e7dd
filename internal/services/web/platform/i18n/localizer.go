// Package i18n resolves the request localizer used by page rendering.
package i18n

import (
	"net/http"
	"strings"

	webi18n "github.com/louisbranch/charactercatalog/internal/services/web/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer prints copy catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveLocalizer picks the printer for r. resolveLanguage overrides request
// negotiation when it returns a parseable tag. A lang query parameter is
// persisted as a cookie.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	tag, persist := webi18n.ResolveTag(r)
	if resolveLanguage != nil {
		if override, ok := webi18n.ParseTag(strings.TrimSpace(resolveLanguage(r))); ok {
			tag, persist = override, false
		}
	}
	if persist {
		webi18n.SetLanguageCookie(w, tag)
	}
	return webi18n.Printer(tag), tag.String()
}

// Default returns the printer for the default language.
func Default() (*message.Printer, language.Tag) {
	tag := webi18n.Default()
	return webi18n.Printer(tag), tag
}
