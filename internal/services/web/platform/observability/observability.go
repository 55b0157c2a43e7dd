// Package observability provides request-level logging for the web service.
package observability

import (
	"log"
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/louisbranch/charactercatalog/internal/services/web/platform/httpx"
)

// RequestLogger logs one line per request with status, size and latency.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics := httpsnoop.CaptureMetrics(next, w, r)
			path := "-"
			if r.URL != nil {
				path = strings.TrimSpace(r.URL.Path)
			}
			logger.Printf(
				"http request method=%s path=%s status=%d bytes=%d latency=%s htmx=%t request_id=%s",
				r.Method,
				path,
				metrics.Code,
				metrics.Written,
				metrics.Duration,
				httpx.IsHTMXRequest(r),
				httpx.RequestIDFrom(r),
			)
		})
	}
}
