package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "atelier",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atelier",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "atelier",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	pageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atelier",
			Subsystem: "views",
			Name:      "renders_total",
			Help:      "Total number of page renders by outcome.",
		},
		[]string{"page", "success"},
	)

	pageRenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "atelier",
			Subsystem: "views",
			Name:      "render_duration_seconds",
			Help:      "Duration of page renders.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"page"},
	)

	themeSelections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atelier",
			Subsystem: "preferences",
			Name:      "theme_selections_total",
			Help:      "Total number of theme preference changes by selected theme.",
		},
		[]string{"theme"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		pageRenders,
		pageRenderDuration,
		themeSelections,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	})
}

// RecordRender records the outcome of rendering a page.
func RecordRender(page string, duration time.Duration, err error) {
	if page == "" {
		page = "unknown"
	}
	if duration <= 0 {
		duration = time.Microsecond
	}
	pageRenders.WithLabelValues(page, strconv.FormatBool(err == nil)).Inc()
	pageRenderDuration.WithLabelValues(page).Observe(duration.Seconds())
}

// RecordThemeSelection counts a stored theme preference.
func RecordThemeSelection(theme string) {
	if theme == "" {
		theme = "unknown"
	}
	themeSelections.WithLabelValues(theme).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// canonicalPath keeps at most two path segments so label cardinality stays
// bounded.
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.SplitN(trimmed, "/", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return "/" + strings.Join(parts, "/")
}
