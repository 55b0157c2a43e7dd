package profilecookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/louisbranch/charactercatalog/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/charactercatalog/internal/services/web/userprofile"
)

func sampleProfile() userprofile.Profile {
	return userprofile.Profile{
		FirstName:          "Lilo",
		LastName:           "Pelekai",
		BirthDate:          "2002-06-21",
		City:               "Kauai",
		State:              "Hawaii",
		FavoriteCharacter:  "Stitch",
		FavoriteMovie:      "Lilo & Stitch",
		FavoriteDisneyland: "Walt Disney World, Florida",
	}
}

func TestSaveThenReadRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "http://example.com/edit-user-profile", nil)
	if err := SaveAt(rr, req, sampleProfile(), requestmeta.SchemePolicy{}, now); err != nil {
		t.Fatalf("SaveAt() error = %v", err)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, Name)
	}
	if cookie.Path != "/" {
		t.Fatalf("cookie path = %q, want /", cookie.Path)
	}
	if cookie.MaxAge != 30*24*60*60 {
		t.Fatalf("cookie max age = %d, want %d", cookie.MaxAge, 30*24*60*60)
	}
	if !cookie.Expires.Equal(now.Add(Lifetime)) {
		t.Fatalf("cookie expires = %v, want %v", cookie.Expires, now.Add(Lifetime))
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie flags = httpOnly:%v sameSite:%v", cookie.HttpOnly, cookie.SameSite)
	}
	if cookie.Secure {
		t.Fatalf("expected insecure cookie for http request")
	}

	next := httptest.NewRequest(http.MethodGet, "http://example.com/user-profile", nil)
	next.AddCookie(cookie)
	got, ok, err := Read(next)
	if err != nil || !ok {
		t.Fatalf("Read() = ok:%v err:%v", ok, err)
	}
	if diff := cmp.Diff(sampleProfile(), got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveSecureBehindTrustedProxy(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "http://example.com/edit-user-profile", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	if err := Save(rr, req, sampleProfile(), requestmeta.SchemePolicy{TrustForwardedProto: true}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !rr.Result().Cookies()[0].Secure {
		t.Fatalf("expected secure cookie behind trusted https proxy")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	if _, ok := Load(nil); ok {
		t.Fatalf("expected nil request to have no profile")
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Load(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "%7B%22firstName%22%3A%22Ariel%22%7D"})
	raw, ok := Load(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if raw != `{"firstName":"Ariel"}` {
		t.Fatalf("raw = %q, want %q", raw, `{"firstName":"Ariel"}`)
	}
}

func TestReadCorruptCookieReturnsError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.AddCookie(&http.Cookie{Name: Name, Value: "not-json"})
	_, ok, err := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be reported present")
	}
	if err == nil {
		t.Fatalf("expected decode error")
	}
}
