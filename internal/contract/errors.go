package contract

import (
	"errors"
	"fmt"
)

// SchemaValidationError reports the first field of a payload that fails its
// declared contract, before the payload crosses any service boundary.
type SchemaValidationError struct {
	Contract   string // which contract was being checked, e.g. "user.registered event"
	Field      string // offending field in its wire (JSON) spelling; empty for payload-level failures
	Constraint string // human-readable violated constraint
}

func (e *SchemaValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", e.Contract, e.Constraint)
	}
	return fmt.Sprintf("invalid %s: field %q %s", e.Contract, e.Field, e.Constraint)
}

// UnknownEventTypeError reports a domain-event discriminator outside the
// recognized set.
type UnknownEventTypeError struct {
	EventType string
}

func (e *UnknownEventTypeError) Error() string {
	return fmt.Sprintf("unrecognized event type %q", e.EventType)
}

func IsSchemaValidation(err error) bool {
	var sve *SchemaValidationError
	return errors.As(err, &sve)
}

func IsUnknownEventType(err error) bool {
	var ute *UnknownEventTypeError
	return errors.As(err, &ute)
}
