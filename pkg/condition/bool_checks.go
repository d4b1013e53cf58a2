package condition

import "reflect"

// boolOf extracts a bool from bool kinds and pointers to them. isNil is true
// for nil pointers and nil interfaces.
func boolOf(value any) (b, isNil, ok bool) {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false, true, rv.Type().Elem().Kind() == reflect.Bool
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return false, true, true
	}
	if rv.Kind() != reflect.Bool {
		return false, false, false
	}
	return rv.Bool(), false, true
}

// IsTrue checks that the value is true. A nil *bool is neither true nor false
// and fails.
func (v *Validator[T]) IsTrue(description ...string) *Validator[T] {
	return v.boolCheck(true, "IsTrue", description, "{argumentName} should be true")
}

// IsFalse checks that the value is false. A nil *bool fails.
func (v *Validator[T]) IsFalse(description ...string) *Validator[T] {
	return v.boolCheck(false, "IsFalse", description, "{argumentName} should be false")
}

func (v *Validator[T]) boolCheck(want bool, check string, description []string, condition string) *Validator[T] {
	if v.done() {
		return v
	}
	b, null, ok := boolOf(v.value)
	if !ok {
		return v.unsupported(check)
	}
	if !null && b == want {
		return v
	}
	return v.Validate(false, describe(description, condition), actualValue(v.value), ViolationDefault)
}
