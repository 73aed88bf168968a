package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Clark-Hu/film-catalog/internal/catalog"
	"github.com/Clark-Hu/film-catalog/internal/config"
	"github.com/Clark-Hu/film-catalog/internal/domain"
	"github.com/Clark-Hu/film-catalog/internal/filmsapi"
	"github.com/Clark-Hu/film-catalog/internal/logging"
)

// stubLister returns canned results for handler tests.
type stubLister struct {
	films []domain.NormalizedFilm
	err   error
}

func (s stubLister) ListFilms(ctx context.Context) ([]domain.NormalizedFilm, error) {
	return s.films, s.err
}

func testConfig() config.Config {
	cfg := config.Defaults()
	cfg.Port = "0"
	cfg.FilmsAPIURL = "http://upstream.invalid/filmes"
	cfg.RateLimitRPS = 0
	return cfg
}

func buildTestServer(tb testing.TB, cfg config.Config, films FilmLister) *Server {
	tb.Helper()
	return New(cfg, films, logging.Discard())
}

// newUpstream serves body with the given status, mimicking the films API.
func newUpstream(tb testing.TB, status int, body []byte) *httptest.Server {
	tb.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	tb.Cleanup(srv.Close)
	return srv
}

func newCatalogService(tb testing.TB, upstreamURL string) *catalog.Service {
	tb.Helper()
	client, err := filmsapi.NewHTTPClient(filmsapi.Options{
		URL:     upstreamURL,
		Timeout: time.Second,
		Logger:  logging.Discard(),
	})
	if err != nil {
		tb.Fatalf("create films api client: %v", err)
	}
	return catalog.NewService(client, catalog.NewMapper(false, logging.Discard()), logging.Discard())
}

func readFixture(tb testing.TB) []byte {
	tb.Helper()
	_, currentFile, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(currentFile), "..", "filmsapi", "testdata", "catalog.json")
	payload, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture: %v", err)
	}
	return payload
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestHandleListFilms(t *testing.T) {
	upstream := newUpstream(t, http.StatusOK, readFixture(t))
	srv := buildTestServer(t, testConfig(), newCatalogService(t, upstream.URL+"/filmes"))

	for _, path := range []string{"/films", "/filmes"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("Content-Type = %q", ct)
			}

			var films []domain.NormalizedFilm
			if err := json.NewDecoder(rec.Body).Decode(&films); err != nil {
				t.Fatalf("decode body: %v", err)
			}

			want := []domain.NormalizedFilm{
				{
					Title:           "Interestelar",
					Year:            2014,
					Director:        "Christopher Nolan",
					Genre:           "Ficção científica",
					DurationSeconds: 10140,
					IMDbRating:      "8.7",
					Profit:          "$536.8 milhões",
					TopAward:        "Oscar de Melhores Efeitos Visuais",
					Synopsis:        "Uma equipe de exploradores viaja através de um buraco de minhoca no espaço.",
				},
				{
					Title:           "Parasita",
					Year:            2019,
					Director:        "Bong Joon-ho",
					Genre:           "Suspense",
					DurationSeconds: 7920,
					IMDbRating:      "8.5",
					Profit:          "$247.4 milhões",
					TopAward:        "Oscar de Melhor Filme",
					Synopsis:        "Greed and class discrimination threaten the symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
				},
				{
					Title:           "Vingadores: Ultimato",
					Year:            2019,
					Director:        "Anthony e Joe Russo",
					Genre:           "Ação",
					DurationSeconds: 10860,
					IMDbRating:      "8.4",
					Profit:          "$2.443 bilhões",
					TopAward:        "Saturn Award de Melhor Filme de Super-Herói",
					Synopsis:        "Les Avengers restants doivent trouver un moyen de ramener leurs alliés.",
				},
			}
			if len(films) != len(want) {
				t.Fatalf("films = %d, want %d", len(films), len(want))
			}
			for i := range want {
				if films[i] != want[i] {
					t.Fatalf("film %d = %+v\nwant %+v", i, films[i], want[i])
				}
			}
		})
	}
}

func TestHandleListFilms_EmptyCatalog(t *testing.T) {
	upstream := newUpstream(t, http.StatusOK, []byte(`{"filmes":[]}`))
	srv := buildTestServer(t, testConfig(), newCatalogService(t, upstream.URL))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/films", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("body = %q, want empty array", body)
	}
}

func TestHandleListFilms_UpstreamFailure(t *testing.T) {
	upstream := newUpstream(t, http.StatusServiceUnavailable, []byte(`oops`))
	srv := buildTestServer(t, testConfig(), newCatalogService(t, upstream.URL))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/films", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Code != "UPSTREAM_UNAVAILABLE" {
		t.Fatalf("code = %s, want UPSTREAM_UNAVAILABLE", resp.Code)
	}
}

func TestHandleListFilms_InvalidRecord(t *testing.T) {
	body := []byte(`{"filmes":[{"titulo":"Sem Nota","duracao":90,"ratings":[],"orcamento":"1 milhão","bilheteria":"2 milhões","premios":[{"nome":"A","relevancia":1}],"sinopse":[{"idioma":"en","texto":"E"}]}]}`)
	upstream := newUpstream(t, http.StatusOK, body)
	srv := buildTestServer(t, testConfig(), newCatalogService(t, upstream.URL))

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/films", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp struct {
		Code    string             `json:"code"`
		Details recordErrorDetails `json:"details"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Code != "INVALID_UPSTREAM_RECORD" {
		t.Fatalf("code = %s, want INVALID_UPSTREAM_RECORD", resp.Code)
	}
	if resp.Details.Record != 1 || resp.Details.Title != "Sem Nota" || resp.Details.Field != "ratings" {
		t.Fatalf("unexpected details: %+v", resp.Details)
	}
}

func TestHandleListFilms_Timeout(t *testing.T) {
	err := &catalog.Error{Kind: catalog.KindUpstreamUnavailable, Err: fmt.Errorf("get films catalog: %w", context.DeadlineExceeded)}
	srv := buildTestServer(t, testConfig(), stubLister{err: err})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/films", nil))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Code != "UPSTREAM_TIMEOUT" {
		t.Fatalf("code = %s, want UPSTREAM_TIMEOUT", resp.Code)
	}
}

func TestHandleListFilms_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.01
	cfg.RateLimitBurst = 1
	srv := buildTestServer(t, cfg, stubLister{films: []domain.NormalizedFilm{}})

	first := httptest.NewRecorder()
	srv.Handler().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/films", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	srv.Handler().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/films", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After header")
	}

	health := httptest.NewRecorder()
	srv.Handler().ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if health.Code != http.StatusOK {
		t.Fatalf("healthz status = %d, health checks are not rate limited", health.Code)
	}
}

func TestHandleHealthz(t *testing.T) {
	srv := buildTestServer(t, testConfig(), stubLister{})
	rec := httptest.NewRecorder()
	srv.handleHealthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
