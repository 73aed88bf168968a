package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func BenchmarkHandleListFilms(b *testing.B) {
	upstream := newUpstream(b, http.StatusOK, readFixture(b))
	srv := buildTestServer(b, testConfig(), newCatalogService(b, upstream.URL))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/films", nil)
		rec := httptest.NewRecorder()

		srv.handleListFilms(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}
