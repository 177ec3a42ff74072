package responses

import (
	"encoding/json"
	"net/http"

	"slidegate/internal/contract"
	"slidegate/internal/correlation"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteRaw copies an already-encoded reply through unchanged. Forwarded
// upstream bodies take this path so the gateway never re-encodes them.
func WriteRaw(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// WriteFailure writes a failure envelope carrying the request's correlation
// identifier.
func WriteFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := contract.NewFailure(message, correlation.FromContext(r.Context()))
	WriteJSON(w, status, env)
}

func WriteNotFound(w http.ResponseWriter, r *http.Request) {
	WriteFailure(w, r, http.StatusNotFound, "Resource not found")
}
