// Package profilecookie persists the visitor profile in a browser cookie.
package profilecookie

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/charactercatalog/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/charactercatalog/internal/services/web/userprofile"
)

// Name is the cookie key holding the profile JSON.
const Name = "userProfile"

// Lifetime is how long a saved profile survives without being rewritten.
const Lifetime = 30 * 24 * time.Hour

// Save writes profile as percent-encoded JSON under Name.
func Save(w http.ResponseWriter, r *http.Request, profile userprofile.Profile, policy requestmeta.SchemePolicy) error {
	return SaveAt(w, r, profile, policy, time.Now())
}

// SaveAt is Save with an explicit clock.
func SaveAt(w http.ResponseWriter, r *http.Request, profile userprofile.Profile, policy requestmeta.SchemePolicy, now time.Time) error {
	if w == nil {
		return nil
	}
	raw, err := userprofile.Encode(profile)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    url.QueryEscape(raw),
		Path:     "/",
		Expires:  now.Add(Lifetime).UTC(),
		MaxAge:   int(Lifetime / time.Second),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load returns the raw profile JSON when the cookie is present.
func Load(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	if decoded, err := url.QueryUnescape(value); err == nil {
		value = decoded
	}
	return value, true
}

// Read loads and decodes the profile. A present but undecodable cookie
// returns ok=true with the decode error.
func Read(r *http.Request) (userprofile.Profile, bool, error) {
	raw, ok := Load(r)
	if !ok {
		return userprofile.Profile{}, false, nil
	}
	profile, err := userprofile.Decode(raw)
	if err != nil {
		return userprofile.Profile{}, true, err
	}
	return profile, true, nil
}
