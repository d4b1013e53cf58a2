package condition

import (
	"fmt"
	"reflect"
)

// Validator carries a value, its argument name and the intent (precondition,
// postcondition or custom error) through a chain of checks.
//
// The first failing check records an error; every later check in the chain is
// skipped, so a failed chain reports exactly one error. Checks return the
// same *Validator so calls can be chained. A Validator is meant to live for a
// single expression and is not safe for concurrent use.
type Validator[T any] struct {
	value      T
	name       string
	factory    errorFactory
	compare    Comparer[T]
	suppressed bool
	err        error
}

// Requires starts a precondition check on an argument. Failures are reported
// as ArgumentNullError, ArgumentOutOfRangeError, InvalidEnumArgumentError or
// ArgumentInvalidError. The optional name defaults to "value".
func Requires[T any](value T, name ...string) *Validator[T] {
	return newValidator(value, name, preconditionFactory{})
}

// Ensures starts a postcondition check on a value the caller produced.
// Failures are always reported as PostconditionFailedError.
func Ensures[T any](value T, name ...string) *Validator[T] {
	return newValidator(value, name, postconditionFactory{})
}

func newValidator[T any](value T, name []string, factory errorFactory) *Validator[T] {
	argumentName := current().argumentName
	if len(name) > 0 {
		argumentName = name[0]
	}
	return &Validator[T]{
		value:   value,
		name:    argumentName,
		factory: factory,
	}
}

// Value returns the validated value.
func (v *Validator[T]) Value() T { return v.value }

// Name returns the argument name used in messages.
func (v *Validator[T]) Name() string { return v.name }

// Err returns the error recorded by the first failed check, or nil.
func (v *Validator[T]) Err() error { return v.err }

// Failed reports whether a check has failed.
func (v *Validator[T]) Failed() bool { return v.err != nil }

// Must returns the value, panicking with the recorded error if a check failed.
func (v *Validator[T]) Must() T {
	if v.err != nil {
		panic(v.err)
	}
	return v.value
}

// Suppress stops the validator from recording failures. It exists for test
// harnesses that exercise check code paths and must not be used to validate
// real input.
func (v *Validator[T]) Suppress() *Validator[T] {
	v.suppressed = true
	return v
}

// Using overrides the comparer for this validator's ordering and equality
// checks. A nil comparer restores the default.
func (v *Validator[T]) Using(c Comparer[T]) *Validator[T] {
	v.compare = c
	return v
}

// Validate is the primitive every check is built on. When ok is false it
// substitutes the argument name into condition, builds the message and
// records the error for the validator's intent. It is exported so packages
// can add their own checks:
//
//	func IsEven(v *condition.Validator[int]) *condition.Validator[int] {
//		return v.Validate(v.Value()%2 == 0, "{argumentName} should be even", "", condition.ViolationDefault)
//	}
func (v *Validator[T]) Validate(ok bool, condition, additional string, violation Violation) *Validator[T] {
	if ok || v.suppressed || v.err != nil {
		return v
	}
	v.err = v.factory.newError(failure{
		argumentName: v.name,
		condition:    substituteName(condition, v.name),
		additional:   additional,
		violation:    violation,
		valueIsNull:  isNil(v.value),
	})
	return v
}

// done reports whether checks should be skipped.
func (v *Validator[T]) done() bool {
	return v.err != nil || v.suppressed
}

// misuse records a configuration error, such as a check applied to a type it
// does not support.
func (v *Validator[T]) misuse(err error) *Validator[T] {
	if v.done() {
		return v
	}
	v.err = err
	return v
}

func (v *Validator[T]) unsupported(check string) *Validator[T] {
	return v.misuse(fmt.Errorf("%w: %s on %s", ErrUnsupportedType, check, reflect.TypeFor[T]()))
}

func (v *Validator[T]) comparer() (Comparer[T], error) {
	if v.compare != nil {
		return v.compare, nil
	}
	return DefaultComparer[T]()
}
