package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveLocalizerPersistsQueryLanguage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	loc, lang := ResolveLocalizer(rr, req, nil)
	if lang != "en-US" {
		t.Fatalf("lang = %q, want %q", lang, "en-US")
	}
	if got := loc.Sprintf("profile.never"); got != "Never" {
		t.Fatalf("Sprintf(profile.never) = %q", got)
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected language cookie")
	}
}

func TestResolveLocalizerUsesResolverOverride(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	_, lang := ResolveLocalizer(rr, req, func(*http.Request) string { return "en-US" })
	if lang != "en-US" {
		t.Fatalf("lang = %q", lang)
	}
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected no cookie when resolver overrides")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	loc, tag := Default()
	if tag.String() != "en-US" {
		t.Fatalf("tag = %s", tag)
	}
	if got := loc.Sprintf("card.view_profile"); got != "VIEW PROFILE" {
		t.Fatalf("Sprintf(card.view_profile) = %q", got)
	}
}
