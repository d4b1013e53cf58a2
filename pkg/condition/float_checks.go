package condition

import (
	"math"
	"reflect"
)

// floatOf extracts a float64 from float kinds and pointers to them.
func floatOf(value any) (f float64, isNil, ok bool) {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			k := rv.Type().Elem().Kind()
			return 0, true, k == reflect.Float32 || k == reflect.Float64
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return 0, true, true
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), false, true
	}
	return 0, false, false
}

func (v *Validator[T]) floatCheck(check string, pass func(f float64) bool, description []string, condition string) *Validator[T] {
	if v.done() {
		return v
	}
	f, null, ok := floatOf(v.value)
	if !ok {
		return v.unsupported(check)
	}
	if !null && pass(f) {
		return v
	}
	return v.Validate(false, describe(description, condition), actualValue(v.value), ViolationDefault)
}

// IsNaN checks that a float value is NaN.
func (v *Validator[T]) IsNaN(description ...string) *Validator[T] {
	return v.floatCheck("IsNaN", math.IsNaN, description, "{argumentName} should be NaN")
}

// IsNotNaN checks that a float value is not NaN.
func (v *Validator[T]) IsNotNaN(description ...string) *Validator[T] {
	return v.floatCheck("IsNotNaN", func(f float64) bool { return !math.IsNaN(f) },
		description, "{argumentName} should not be NaN")
}

// IsInfinity checks for positive or negative infinity.
func (v *Validator[T]) IsInfinity(description ...string) *Validator[T] {
	return v.floatCheck("IsInfinity", func(f float64) bool { return math.IsInf(f, 0) },
		description, "{argumentName} should be infinity")
}

// IsNotInfinity checks that a float value is finite or NaN.
func (v *Validator[T]) IsNotInfinity(description ...string) *Validator[T] {
	return v.floatCheck("IsNotInfinity", func(f float64) bool { return !math.IsInf(f, 0) },
		description, "{argumentName} should not be infinity")
}

// IsPositiveInfinity checks for +Inf.
func (v *Validator[T]) IsPositiveInfinity(description ...string) *Validator[T] {
	return v.floatCheck("IsPositiveInfinity", func(f float64) bool { return math.IsInf(f, 1) },
		description, "{argumentName} should be positive infinity")
}

// IsNotPositiveInfinity checks that a float value is not +Inf.
func (v *Validator[T]) IsNotPositiveInfinity(description ...string) *Validator[T] {
	return v.floatCheck("IsNotPositiveInfinity", func(f float64) bool { return !math.IsInf(f, 1) },
		description, "{argumentName} should not be positive infinity")
}

// IsNegativeInfinity checks for -Inf.
func (v *Validator[T]) IsNegativeInfinity(description ...string) *Validator[T] {
	return v.floatCheck("IsNegativeInfinity", func(f float64) bool { return math.IsInf(f, -1) },
		description, "{argumentName} should be negative infinity")
}

// IsNotNegativeInfinity checks that a float value is not -Inf.
func (v *Validator[T]) IsNotNegativeInfinity(description ...string) *Validator[T] {
	return v.floatCheck("IsNotNegativeInfinity", func(f float64) bool { return !math.IsInf(f, -1) },
		description, "{argumentName} should not be negative infinity")
}
