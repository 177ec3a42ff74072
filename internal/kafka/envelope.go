package kafka

import (
	"encoding/json"
	"time"
)

// Envelope is the wire frame for every published message. CorrelationID
// carries the originating x-request-id so consumers can tie a message back
// to the HTTP request that produced it.
type Envelope struct {
	MessageID     string          `json:"messageId"`
	CorrelationID string          `json:"correlationId,omitempty"`
	Type          string          `json:"type"`
	OccurredAt    time.Time       `json:"occurredAt"`
	Payload       json.RawMessage `json:"payload"`
}
