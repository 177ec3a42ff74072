package events

import "slidegate/internal/app/proxy"

// IngestInput carries one raw event submission. The body stays opaque bytes
// so the upstream receives exactly what the caller sent once validation
// passes.
type IngestInput struct {
	Body           []byte
	ContentType    string
	Authorization  string
	IdempotencyKey string
}

// IngestResult is the reply for one submission. Replayed marks results
// served from the idempotency store instead of a fresh upstream call.
type IngestResult struct {
	proxy.Result
	Replayed bool
}
