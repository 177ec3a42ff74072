// Package apidocs serves the gateway's OpenAPI document. The document is
// maintained by hand and embedded at build time; the Swagger UI mounted on
// /swagger renders it.
package apidocs

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.json
var openapiSpec []byte

// Serve returns the OpenAPI document as JSON.
func Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(openapiSpec)
}
