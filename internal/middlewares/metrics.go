package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=metrics.go -destination=mock_metrics.go -package=middlewares

// RequestRecorder receives one observation per served request.
type RequestRecorder interface {
	RecordRequest(method, route string, statusCode int, duration time.Duration)
	IncInFlight()
	DecInFlight()
}

// MetricsMiddleware records request counts and latencies labelled by the chi
// route pattern, so /modules/7 and /modules/8 share a series.
func MetricsMiddleware(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder.IncInFlight()
			defer recorder.DecInFlight()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			recorder.RecordRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
