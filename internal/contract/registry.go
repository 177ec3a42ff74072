// Package contract is the schema registry for every shape crossing the
// gateway boundary: the API response envelope, the pagination descriptor and
// the domain-event family. It owns the canonical definitions; middleware and
// forwarding code only consume or produce conforming instances.
//
// Validation is structural and total: unknown extra fields are ignored,
// missing optional fields stay absent, and the first violated constraint is
// reported by its wire (JSON) field name. Nothing here performs I/O.
package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Kind selects a contract for Validate.
type Kind string

const (
	KindEnvelope    Kind = "envelope"
	KindPagination  Kind = "pagination"
	KindDomainEvent Kind = "event"
)

// Contract labels used in validation errors.
const (
	contractEnvelope   = "response envelope"
	contractPagination = "pagination descriptor"
	contractEvent      = "domain event"
)

// Validate checks an untyped payload against the named contract and returns
// the strongly-typed value: *Envelope, *Pagination, or a DomainEvent variant.
func Validate(kind Kind, payload []byte) (any, error) {
	switch kind {
	case KindEnvelope:
		return ParseEnvelope(payload)
	case KindPagination:
		return ParsePagination(payload)
	case KindDomainEvent:
		return ParseDomainEvent(payload)
	default:
		return nil, fmt.Errorf("contract: unknown kind %q", kind)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations by JSON field name, matching the wire contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	v.RegisterStructValidation(envelopeStructLevel, Envelope{})
	v.RegisterStructValidation(paginationStructLevel, Pagination{})

	return v
}

// envelopeStructLevel couples success and error: success=true forbids error,
// success=false requires a non-empty one.
func envelopeStructLevel(sl validator.StructLevel) {
	env := sl.Current().Interface().(Envelope)
	if env.Success && env.Error != nil {
		sl.ReportError(env.Error, "error", "Error", "absent_on_success", "")
	}
	if !env.Success && (env.Error == nil || *env.Error == "") {
		sl.ReportError(env.Error, "error", "Error", "present_on_failure", "")
	}
}

// paginationStructLevel ties totalPages to the counts it is derived from.
func paginationStructLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(Pagination)
	if p.Limit < 1 {
		// The field tag already reports this; no way to derive totalPages.
		return
	}
	if p.TotalPages != ceilDiv(p.Total, p.Limit) {
		sl.ReportError(p.TotalPages, "totalPages", "TotalPages", "consistent_total_pages", "")
	}
}

// firstViolation maps a validator error to the contract error naming the
// first offending field.
func firstViolation(contract string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &SchemaValidationError{
			Contract:   contract,
			Field:      fe.Field(),
			Constraint: constraintText(fe),
		}
	}
	return &SchemaValidationError{Contract: contract, Constraint: err.Error()}
}

func malformed(contract string) error {
	return &SchemaValidationError{Contract: contract, Constraint: "payload is not a JSON object"}
}

func constraintText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a UUID"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be an RFC3339 datetime"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "absent_on_success":
		return "must be absent when success is true"
	case "present_on_failure":
		return "is required when success is false"
	case "consistent_total_pages":
		return "must equal ceil(total/limit)"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("must satisfy %s", fe.Tag())
	}
}
