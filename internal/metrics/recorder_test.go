package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_NilIsSafe(t *testing.T) {
	t.Parallel()

	var r *Recorder
	r.ObserveUpstream("standings", "ok")
	r.ObserveCacheLookup(true)
	r.SetBudgetUsed(3)
	r.SetDegraded(true)
	r.ObserveQuestion("standings", time.Second)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	rec := httptest.NewRecorder()
	r.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusTeapot)
	}
}

func TestRecorder_CountsUpstreamAndCache(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObserveUpstream("standings", "ok")
	r.ObserveUpstream("standings", "ok")
	r.ObserveUpstream("fixtures", "rate_limited")
	r.ObserveCacheLookup(true)
	r.ObserveCacheLookup(false)
	r.ObserveCacheLookup(false)
	r.SetBudgetUsed(42)
	r.SetDegraded(true)

	if got := testutil.ToFloat64(r.upstreamCalls.WithLabelValues("standings", "ok")); got != 2 {
		t.Fatalf("unexpected upstream count: got=%v want=2", got)
	}
	if got := testutil.ToFloat64(r.cacheLookups.WithLabelValues("miss")); got != 2 {
		t.Fatalf("unexpected miss count: got=%v want=2", got)
	}
	if got := testutil.ToFloat64(r.budgetUsed); got != 42 {
		t.Fatalf("unexpected budget gauge: got=%v want=42", got)
	}
	if got := testutil.ToFloat64(r.degraded); got != 1 {
		t.Fatalf("unexpected degraded gauge: got=%v want=1", got)
	}
	r.SetDegraded(false)
	if got := testutil.ToFloat64(r.degraded); got != 0 {
		t.Fatalf("unexpected degraded gauge after recovery: got=%v want=0", got)
	}
}

func TestRecorder_MiddlewareUsesRoutePattern(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/standings/{leagueID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", r.Handler())
	handler := r.Middleware(mux)

	for _, path := range []string{"/api/standings/94", "/api/standings/39"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	got := testutil.ToFloat64(r.httpRequests.WithLabelValues(http.MethodGet, "GET /api/standings/{leagueID}", "200"))
	if got != 2 {
		t.Fatalf("unexpected request count: got=%v want=2", got)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "football_chatbot_http_requests_total") {
		t.Fatalf("metrics output missing request counter")
	}
}
