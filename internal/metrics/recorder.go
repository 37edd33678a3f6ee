// Package metrics exposes the chatbot's prometheus collectors. Every method is safe on a
// nil *Recorder so callers can leave metrics disabled without branching.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "football_chatbot"

type Recorder struct {
	registry *prometheus.Registry

	upstreamCalls *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	budgetUsed    prometheus.Gauge
	degraded      prometheus.Gauge
	questions     *prometheus.CounterVec
	questionTime  *prometheus.HistogramVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "API-Football calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by result.",
		}, []string{"result"}),
		budgetUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upstream_budget_used",
			Help:      "Upstream requests spent in the current daily window.",
		}),
		degraded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upstream_degraded",
			Help:      "1 while the data source is degraded by rate limiting.",
		}),
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_total",
			Help:      "Answered chat questions by intent.",
		}, []string{"intent"}),
		questionTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "question_duration_seconds",
			Help:      "Time to answer one chat question.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		}, []string{"intent"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry = prometheus.NewRegistry()
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.upstreamCalls,
		r.cacheLookups,
		r.budgetUsed,
		r.degraded,
		r.questions,
		r.questionTime,
		r.httpRequests,
		r.httpDurations,
	)
	return r
}

func (r *Recorder) ObserveUpstream(endpoint, outcome string) {
	if r == nil {
		return
	}
	r.upstreamCalls.WithLabelValues(endpoint, outcome).Inc()
}

func (r *Recorder) ObserveCacheLookup(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

func (r *Recorder) SetBudgetUsed(used int) {
	if r == nil {
		return
	}
	r.budgetUsed.Set(float64(used))
}

func (r *Recorder) SetDegraded(degraded bool) {
	if r == nil {
		return
	}
	if degraded {
		r.degraded.Set(1)
		return
	}
	r.degraded.Set(0)
}

func (r *Recorder) ObserveQuestion(intent string, duration time.Duration) {
	if r == nil {
		return
	}
	r.questions.WithLabelValues(intent).Inc()
	r.questionTime.WithLabelValues(intent).Observe(duration.Seconds())
}

// Handler serves the registry in the prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware records request count and latency labelled by the mux route pattern,
// which keeps path parameters out of the label set.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	if r == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, req)

		route := req.Pattern
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(req.Method, route, strconv.Itoa(rw.status)).Inc()
		r.httpDurations.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
