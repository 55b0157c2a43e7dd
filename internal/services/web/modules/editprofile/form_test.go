package editprofile

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/louisbranch/charactercatalog/internal/services/web/userprofile"
)

func TestParseProfileFormTrimsFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("firstName=+Rapunzel+&lastName=Corona&birthDate=2004-07-01&favoriteMovie=Tangled"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	got, err := parseProfileForm(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("parseProfileForm() error = %v", err)
	}
	want := userprofile.Profile{
		FirstName:     "Rapunzel",
		LastName:      "Corona",
		BirthDate:     "2004-07-01",
		FavoriteMovie: "Tangled",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseProfileFormRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	body := "firstName=" + strings.Repeat("a", maxFormBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if _, err := parseProfileForm(httptest.NewRecorder(), req); err == nil {
		t.Fatalf("expected oversized form to fail")
	}
}
