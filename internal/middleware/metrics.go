package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lvasseur/carte-des-talents/internal/metrics"
)

// MetricsMiddleware observe les requêtes HTTP dans Prometheus
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware crée un nouveau middleware de métriques
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Observe compte et chronomètre chaque requête
func (m *MetricsMiddleware) Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(recorder, r)

		m.metrics.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(recorder.status)).Inc()
		m.metrics.HTTPDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}
