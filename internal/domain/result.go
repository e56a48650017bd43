package domain

import (
	"errors"
	"fmt"
)

// Failure classifies a business-rule rejection. Handlers map these onto
// HTTP status codes; services never inspect error strings.
type Failure int

const (
	FailureUnknown Failure = iota
	FailureInvalidInput
	FailureEntityDoesNotExist
	FailureEntityAlreadyExists
	FailureDatabaseError
	FailureUnauthorized
)

func (f Failure) String() string {
	switch f {
	case FailureInvalidInput:
		return "invalid_input"
	case FailureEntityDoesNotExist:
		return "entity_does_not_exist"
	case FailureEntityAlreadyExists:
		return "entity_already_exists"
	case FailureDatabaseError:
		return "database_error"
	case FailureUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// DomainError is the single error type crossing the service boundary for
// expected failures. Anything else is treated as a storage/system error.
type DomainError struct {
	Kind    Failure
	Message string
}

func (e *DomainError) Error() string { return e.Message }

func Invalid(format string, args ...any) *DomainError {
	return &DomainError{Kind: FailureInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *DomainError {
	return &DomainError{Kind: FailureEntityDoesNotExist, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *DomainError {
	return &DomainError{Kind: FailureEntityAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

func Storage(format string, args ...any) *DomainError {
	return &DomainError{Kind: FailureDatabaseError, Message: fmt.Sprintf(format, args...)}
}

// FailureOf classifies any error. Unrecognized errors count as database
// errors so they surface as 503 rather than a misleading 400.
func FailureOf(err error) Failure {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return FailureDatabaseError
}
