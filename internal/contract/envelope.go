package contract

import (
	"encoding/json"
	"time"
)

// Envelope is the standard success/error wrapper around any API response
// payload crossing the gateway boundary.
//
// Invariant: success=true implies error is absent; success=false implies
// error is present. Enforced by struct-level validation in registry.go.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *string         `json:"error,omitempty"`
	Timestamp string          `json:"timestamp" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	TraceID   string          `json:"traceId,omitempty"`
}

// NewSuccess builds a success envelope around an opaque payload.
func NewSuccess(data json.RawMessage, traceID string) Envelope {
	return Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		TraceID:   traceID,
	}
}

// NewFailure builds the uniform failure envelope. The message is the only
// detail the caller sees; the underlying cause stays in local logs.
func NewFailure(message, traceID string) Envelope {
	return Envelope{
		Success:   false,
		Error:     &message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		TraceID:   traceID,
	}
}

// ParseEnvelope validates an untyped payload against the envelope contract.
func ParseEnvelope(payload []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, malformed(contractEnvelope)
	}
	if err := validate.Struct(env); err != nil {
		return nil, firstViolation(contractEnvelope, err)
	}
	return &env, nil
}
