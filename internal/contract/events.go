package contract

import (
	"encoding/json"
)

// EventType discriminates the domain-event family. The set is closed: a
// payload with any other discriminator fails with UnknownEventTypeError.
type EventType string

const (
	EventUserRegistered EventType = "user.registered"
	EventUserLogin      EventType = "user.login"
)

// DomainEvent is one immutable record of something that happened, tagged by
// its event type. Implementations are the closed set of variants below;
// adding a type means adding a variant and a ParseDomainEvent case.
type DomainEvent interface {
	Type() EventType
}

// UserRegisteredEvent records a completed account registration.
type UserRegisteredEvent struct {
	EventType        EventType      `json:"eventType" validate:"required"`
	UserID           string         `json:"userId" validate:"required,uuid"`
	Email            string         `json:"email" validate:"required,email"`
	RegistrationDate string         `json:"registrationDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

func (UserRegisteredEvent) Type() EventType { return EventUserRegistered }

// UserLoginEvent records a successful login with its network metadata.
type UserLoginEvent struct {
	EventType EventType `json:"eventType" validate:"required"`
	UserID    string    `json:"userId" validate:"required,uuid"`
	LoginDate string    `json:"loginDate" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

func (UserLoginEvent) Type() EventType { return EventUserLogin }

// ParseDomainEvent validates an untyped payload against the event contract:
// the discriminator picks the variant, then the variant's required fields and
// formats are checked. The returned value is one of the concrete event types.
func ParseDomainEvent(payload []byte) (DomainEvent, error) {
	var head struct {
		EventType EventType `json:"eventType"`
	}
	if err := json.Unmarshal(payload, &head); err != nil {
		return nil, malformed(contractEvent)
	}

	switch head.EventType {
	case EventUserRegistered:
		var ev UserRegisteredEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, malformed(string(EventUserRegistered) + " event")
		}
		if err := validate.Struct(ev); err != nil {
			return nil, firstViolation(string(EventUserRegistered)+" event", err)
		}
		return ev, nil

	case EventUserLogin:
		var ev UserLoginEvent
		if err := json.Unmarshal(payload, &ev); err != nil {
			return nil, malformed(string(EventUserLogin) + " event")
		}
		if err := validate.Struct(ev); err != nil {
			return nil, firstViolation(string(EventUserLogin)+" event", err)
		}
		return ev, nil

	case "":
		return nil, &SchemaValidationError{Contract: contractEvent, Field: "eventType", Constraint: "is required"}

	default:
		return nil, &UnknownEventTypeError{EventType: string(head.EventType)}
	}
}
