package workflows

import (
	"errors"
	"fmt"

	"github.com/citylib/frontdesk/internal/database"
)

// Kind tags a workflow failure so callers can branch on the failure class
// instead of matching message text.
type Kind int

const (
	// KindMissingField: a required form field was blank after trimming.
	KindMissingField Kind = iota
	// KindInvalidFormat: a field did not parse (bad date).
	KindInvalidFormat
	// KindNotFound: a referenced entity id did not resolve.
	KindNotFound
	// KindUnavailable: the item is not available for borrowing.
	KindUnavailable
	// KindAlreadyVolunteered: the member already holds the volunteer role.
	KindAlreadyVolunteered
	// KindTimeout: the store round-trip exceeded its deadline.
	KindTimeout
	// KindConflict: the store rejected a write with a constraint violation.
	KindConflict
	// KindStore: any other store failure (connectivity loss, corruption, ...).
	KindStore
)

// Error is the structured outcome of a failed workflow. Field names the
// offending form field for MissingField/InvalidFormat; Entity names the
// unresolved entity for NotFound.
type Error struct {
	Kind   Kind
	Field  string
	Entity string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing field: %s", e.Field)
	case KindInvalidFormat:
		return fmt.Sprintf("invalid format: %s", e.Field)
	case KindNotFound:
		return fmt.Sprintf("%s not found", e.Entity)
	case KindUnavailable:
		return "item not available"
	case KindAlreadyVolunteered:
		return "already volunteered"
	case KindTimeout:
		return fmt.Sprintf("store timeout: %v", e.Err)
	case KindConflict:
		return fmt.Sprintf("store conflict: %v", e.Err)
	default:
		return fmt.Sprintf("store error: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func missingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

func invalidFormat(field string) *Error {
	return &Error{Kind: KindInvalidFormat, Field: field}
}

func notFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity}
}

// storeFailure classifies an unexpected store error into timeout, constraint
// conflict or the generic store kind.
func storeFailure(err error) *Error {
	switch {
	case database.IsTimeout(err):
		return &Error{Kind: KindTimeout, Err: err}
	case database.IsConstraintViolation(err):
		return &Error{Kind: KindConflict, Err: err}
	default:
		return &Error{Kind: KindStore, Err: err}
	}
}

// KindOf extracts the failure kind from a workflow error. Non-workflow
// errors report KindStore.
func KindOf(err error) Kind {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr.Kind
	}
	return KindStore
}
