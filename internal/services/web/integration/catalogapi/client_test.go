package catalogapi

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/louisbranch/charactercatalog/internal/services/web/catalog"
	apperrors "github.com/louisbranch/charactercatalog/internal/services/web/platform/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *http.Transport) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	transport := &http.Transport{}
	t.Cleanup(transport.CloseIdleConnections)
	client, err := New(Config{
		BaseURL:   server.URL,
		Timeout:   2 * time.Second,
		Transport: transport,
		Logger:    log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, transport
}

func TestNewRejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"ftp://example.com", "http://", "://bad"} {
		if _, err := New(Config{BaseURL: raw}); err == nil {
			t.Fatalf("New(%q) expected error", raw)
		}
	}
	client, err := New(Config{})
	if err != nil {
		t.Fatalf("New(default) error = %v", err)
	}
	if got := client.endpoint(characterPath, nil); got != DefaultBaseURL+"/character" {
		t.Fatalf("endpoint = %q, want %q", got, DefaultBaseURL+"/character")
	}
}

func TestListCharactersDecodesArray(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/character" {
			t.Errorf("path = %q, want /character", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{"info":{"count":2},"data":[
			{"_id":4703,"name":"Mickey Mouse","imageUrl":"https://img/mickey.png","sourceUrl":"https://wiki/mickey","updatedAt":"2021-04-12T02:19:51.497Z","films":["Fantasia"],"tvShows":[],"shortFilms":["Steamboat Willie"]},
			{"_id":"112","name":"Achilles","parkAttractions":["Fantasmic!"]}
		]}`)
	}))

	got, err := client.ListCharacters(context.Background())
	if err != nil {
		t.Fatalf("ListCharacters() error = %v", err)
	}
	want := []catalog.Character{
		{
			ID:         "4703",
			Name:       "Mickey Mouse",
			ImageURL:   "https://img/mickey.png",
			SourceURL:  "https://wiki/mickey",
			UpdatedAt:  time.Date(2021, time.April, 12, 2, 19, 51, 497000000, time.UTC),
			Films:      []string{"Fantasia"},
			TVShows:    []string{},
			ShortFilms: []string{"Steamboat Willie"},
		},
		{ID: "112", Name: "Achilles", ParkAttractions: []string{"Fantasmic!"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ListCharacters() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterCharactersEscapesName(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Mickey & Minnie" {
			t.Errorf("name = %q, want %q", got, "Mickey & Minnie")
		}
		_, _ = io.WriteString(w, `{"info":{"count":1},"data":{"_id":1,"name":"Mickey & Minnie"}}`)
	}))

	got, err := client.FilterCharacters(context.Background(), "Mickey & Minnie")
	if err != nil {
		t.Fatalf("FilterCharacters() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Mickey & Minnie" {
		t.Fatalf("FilterCharacters() = %+v", got)
	}
}

func TestFilterCharactersEmptyObjectIsNoResults(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"info":{"count":0},"data":{}}`)
	}))

	got, err := client.FilterCharacters(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("FilterCharacters() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len(FilterCharacters()) = %d, want 0", len(got))
	}
}

func TestGetCharacter(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/character/308":
			_, _ = io.WriteString(w, `{"info":{"count":1},"data":{"_id":308,"name":"Queen Arianna","url":"https://api/character/308","films":["Tangled"]}}`)
		case "/character/999":
			_, _ = io.WriteString(w, `{"info":{"count":0},"data":{}}`)
		default:
			http.NotFound(w, r)
		}
	}))

	got, err := client.GetCharacter(context.Background(), "308")
	if err != nil {
		t.Fatalf("GetCharacter() error = %v", err)
	}
	if got.ID != "308" || got.Name != "Queen Arianna" || got.SourceURL != "https://api/character/308" {
		t.Fatalf("GetCharacter() = %+v", got)
	}

	for _, id := range []string{"999", "missing", " "} {
		_, err := client.GetCharacter(context.Background(), id)
		if got := apperrors.KindOf(err); got != apperrors.KindNotFound {
			t.Fatalf("GetCharacter(%q) kind = %q, want %q", id, got, apperrors.KindNotFound)
		}
	}
}

func TestUpstreamStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   int
	}{
		{status: http.StatusServiceUnavailable, want: http.StatusServiceUnavailable},
		{status: http.StatusBadGateway, want: http.StatusServiceUnavailable},
		{status: http.StatusBadRequest, want: http.StatusBadRequest},
		{status: http.StatusNotFound, want: http.StatusNotFound},
		{status: http.StatusTeapot, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, err := client.ListCharacters(context.Background())
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		if got := apperrors.HTTPStatus(err); got != tc.want {
			t.Fatalf("status %d: HTTPStatus = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestMalformedBodyIsUnknown(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":"nope"}`)
	}))
	_, err := client.ListCharacters(context.Background())
	if got := apperrors.KindOf(err); got != apperrors.KindUnknown {
		t.Fatalf("kind = %q, want %q", got, apperrors.KindUnknown)
	}
}

func TestNetworkFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := New(Config{BaseURL: baseURL, Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = client.ListCharacters(context.Background())
	if got := apperrors.HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestCanceledContextIsUnavailable(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.FilterCharacters(ctx, "slow")
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want %q", got, apperrors.KindUnavailable)
	}
}

func TestRateLimiterWaitHonorsContext(t *testing.T) {
	t.Parallel()

	client, err := New(Config{
		BaseURL:           "http://127.0.0.1:1",
		RequestsPerSecond: 0.001,
		Burst:             1,
		Logger:            log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// Drain the single burst token.
	client.limiter.Allow()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = client.ListCharacters(ctx)
	if got := apperrors.KindOf(err); got != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want %q", got, apperrors.KindUnavailable)
	}
}

func TestClientLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"_id":1,"name":"Stitch"}]}`)
	}))
	transport := &http.Transport{}
	client, err := New(Config{BaseURL: server.URL, Transport: transport, Logger: log.New(io.Discard, "", 0)})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.ListCharacters(context.Background()); err != nil {
		t.Fatalf("ListCharacters() error = %v", err)
	}
	transport.CloseIdleConnections()
	server.Close()
}
