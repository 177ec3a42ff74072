package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"slidegate/internal/correlation"
	"slidegate/internal/logging"
)

func useBaseMiddlewares(r chi.Router, logger logging.Logger) {
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Correlation must run before anything that reads or forwards headers.
	r.Use(requestID)
	r.Use(requestLogger(logger))

	r.Use(middleware.Timeout(60 * time.Second))
}

func requestLogger(logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http_request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", correlation.FromContext(r.Context()),
				"remote_ip", r.RemoteAddr,
			)
		}
		return http.HandlerFunc(fn)
	}
}
