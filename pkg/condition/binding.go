package condition

import (
	"reflect"

	"github.com/dmitrymomot/conditions/pkg/logger"
)

// probeMessage is passed to constructors at binding time to make sure they
// produce an error.
const probeMessage = "condition binding probe"

// Alternative makes precondition validators report failures with a caller
// chosen error type instead of the argument error kinds. Create it with
// WithErrorOnFailure and pass it to RequiresWith.
type Alternative struct {
	errorType reflect.Type
	newErr    func(message string) error
}

// ErrorType returns the error type the alternative produces.
func (a *Alternative) ErrorType() reflect.Type {
	return a.errorType
}

// errorTypes caches, per error type, whether it can be produced on failure.
// Entries are written once and never invalidated.
var errorTypes = newOnceCache[reflect.Type, error]()

// WithErrorOnFailure binds a constructor for the error type E. Every failed
// check on a validator created through the returned Alternative reports
// newErr(message), regardless of violation kind or nil-ness.
//
// E must be a concrete type: interface types such as error itself are
// rejected. The type check runs once per E for the life of the process. The
// constructor must be non-nil and must return a non-nil error.
func WithErrorOnFailure[E error](newErr func(message string) E) (*Alternative, error) {
	t := reflect.TypeFor[E]()
	if err := errorTypes.get(t, func() error { return bindErrorType(t) }); err != nil {
		return nil, err
	}

	if newErr == nil {
		return nil, &ErrorTypeError{
			TypeName: t.String(),
			Reason:   "constructor is nil",
			Err:      ErrNilErrorConstructor,
		}
	}
	if isNil(newErr(probeMessage)) {
		return nil, &ErrorTypeError{
			TypeName: t.String(),
			Reason:   "constructor returned a nil error",
			Err:      ErrNilErrorResult,
		}
	}

	return &Alternative{
		errorType: t,
		newErr:    func(message string) error { return newErr(message) },
	}, nil
}

// MustWithErrorOnFailure is like WithErrorOnFailure but panics when the
// binding is rejected. Intended for package-level variables.
func MustWithErrorOnFailure[E error](newErr func(message string) E) *Alternative {
	alt, err := WithErrorOnFailure(newErr)
	if err != nil {
		panic(err)
	}
	return alt
}

func bindErrorType(t reflect.Type) error {
	log := current().logger
	if t.Kind() == reflect.Interface {
		err := &ErrorTypeError{
			TypeName: t.String(),
			Reason:   "interface types cannot be constructed",
			Err:      ErrInvalidErrorType,
		}
		log.Warn("error type rejected", logger.ErrorType(t.String()), logger.Error(err))
		return err
	}
	log.Debug("error type bound", logger.ErrorType(t.String()))
	return nil
}

// RequiresWith creates a precondition validator whose failures are reported
// through alt. A nil alt behaves like Requires.
func RequiresWith[T any](alt *Alternative, value T, name ...string) *Validator[T] {
	if alt == nil {
		return Requires(value, name...)
	}
	return newValidator(value, name, customFactory{alt: alt})
}
