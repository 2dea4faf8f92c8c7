package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aburayhan-bpi/assetwise-server/metrics"
)

// MetricsMiddleware records request count, duration and error count per
// route template.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Upgrade") == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}

		metrics.APIRequestCounter.With(prometheus.Labels{
			"method": r.Method,
			"path":   path,
		}).Inc()

		rw := &responseWriter{w, http.StatusOK}
		next.ServeHTTP(rw, r)

		status := strconv.Itoa(rw.status)
		metrics.RequestDurationHistogram.With(prometheus.Labels{
			"method": r.Method,
			"path":   path,
			"status": status,
		}).Observe(time.Since(start).Seconds())

		if rw.status >= 400 {
			metrics.APIErrorCounter.With(prometheus.Labels{
				"method": r.Method,
				"path":   path,
				"status": status,
			}).Inc()
		}
	})
}
