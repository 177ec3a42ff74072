package router

import (
	"net/http"

	"slidegate/internal/correlation"
)

// requestID resolves the correlation identifier exactly once per request. A
// non-empty inbound X-Request-Id is reused verbatim, otherwise a fresh UUID
// is minted. The resolved value is stamped on the response header and the
// request context before any handler runs, so everything downstream observes
// the same identifier.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := correlation.Resolve(r.Header.Get(correlation.Header))

		w.Header().Set(correlation.Header, id)
		ctx := correlation.WithContext(r.Context(), id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
