package condition

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrArgumentInvalid is matched by every precondition failure. Null, out of
	// range and invalid enum failures are specialisations of it.
	ErrArgumentInvalid = errors.New("argument is invalid")

	// ErrArgumentNull indicates the validated argument was nil.
	ErrArgumentNull = errors.New("argument is nil")

	// ErrArgumentOutOfRange indicates an ordering or range check failed.
	ErrArgumentOutOfRange = errors.New("argument is out of range")

	// ErrInvalidEnumArgument indicates an enum value outside the accepted range.
	ErrInvalidEnumArgument = errors.New("invalid enum argument")

	// ErrPostconditionFailed is matched by every postcondition failure.
	ErrPostconditionFailed = errors.New("postcondition failed")
)

// Configuration errors. These describe misuse of the package rather than a
// violated condition and are never produced by a suppressed check.
var (
	ErrInvalidErrorType    = errors.New("error type cannot be used on failure")
	ErrNilErrorConstructor = errors.New("error constructor is nil")
	ErrNilErrorResult      = errors.New("error constructor returned nil")
	ErrNotComparable       = errors.New("type has no default comparer")
	ErrUnsupportedType     = errors.New("check does not support the value type")
)

// ArgumentInvalidError is returned by a precondition check that failed for
// a non-nil value.
type ArgumentInvalidError struct {
	ArgumentName string
	Message      string
}

func (e *ArgumentInvalidError) Error() string { return e.Message }

func (e *ArgumentInvalidError) Is(target error) bool {
	return target == ErrArgumentInvalid
}

// ArgumentNullError is returned by a precondition check that failed because
// the validated value was nil.
type ArgumentNullError struct {
	ArgumentName string
	Message      string
}

func (e *ArgumentNullError) Error() string { return e.Message }

func (e *ArgumentNullError) Is(target error) bool {
	return target == ErrArgumentNull || target == ErrArgumentInvalid
}

// ArgumentOutOfRangeError is returned by failed ordering and range checks.
type ArgumentOutOfRangeError struct {
	ArgumentName string
	Message      string
}

func (e *ArgumentOutOfRangeError) Error() string { return e.Message }

func (e *ArgumentOutOfRangeError) Is(target error) bool {
	return target == ErrArgumentOutOfRange || target == ErrArgumentInvalid
}

// InvalidEnumArgumentError is returned when an enum value falls outside the
// accepted range. Its message carries the argument name as a trailing
// "Parameter name: x." sentence.
type InvalidEnumArgumentError struct {
	ArgumentName string
	Message      string
}

func (e *InvalidEnumArgumentError) Error() string { return e.Message }

func (e *InvalidEnumArgumentError) Is(target error) bool {
	return target == ErrInvalidEnumArgument || target == ErrArgumentInvalid
}

// PostconditionFailedError is the only error produced by Ensures validators.
type PostconditionFailedError struct {
	Message string
}

func (e *PostconditionFailedError) Error() string { return e.Message }

func (e *PostconditionFailedError) Is(target error) bool {
	return target == ErrPostconditionFailed
}

// ErrorTypeError reports an error type or constructor rejected by
// WithErrorOnFailure.
type ErrorTypeError struct {
	// TypeName is the Go type name of the rejected error type.
	TypeName string
	// Reason explains the rejection.
	Reason string
	// Err is one of the configuration sentinels.
	Err error
}

func (e *ErrorTypeError) Error() string {
	return fmt.Sprintf("error type %s cannot be used on failure: %s", e.TypeName, e.Reason)
}

func (e *ErrorTypeError) Unwrap() error { return e.Err }

func (e *ErrorTypeError) Is(target error) bool {
	return target == ErrInvalidErrorType
}
