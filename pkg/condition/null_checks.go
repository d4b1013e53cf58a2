package condition

import "reflect"

// IsNull checks that the value is nil. Values of types that cannot be nil
// always fail.
func (v *Validator[T]) IsNull(description ...string) *Validator[T] {
	if v.done() || isNil(v.value) {
		return v
	}
	return v.Validate(false, describe(description, "{argumentName} should be nil"), actualValue(v.value), ViolationDefault)
}

// IsNotNull checks that the value is not nil.
func (v *Validator[T]) IsNotNull(description ...string) *Validator[T] {
	if v.done() || !isNil(v.value) {
		return v
	}
	return v.Validate(false, describe(description, "{argumentName} should not be nil"), "", ViolationDefault)
}

// TypeOf returns the reflect.Type of U for use with IsOfType and IsNotOfType.
func TypeOf[U any]() reflect.Type {
	return reflect.TypeFor[U]()
}

// isInstance reports whether the dynamic type of the value can be assigned to t.
func (v *Validator[T]) isInstance(t reflect.Type) bool {
	return reflect.TypeOf(any(v.value)).AssignableTo(t)
}

// IsOfType checks that the dynamic type of the value is assignable to t.
// A nil value always passes.
func (v *Validator[T]) IsOfType(t reflect.Type, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	if t == nil {
		return v.unsupported("IsOfType(nil)")
	}
	if isNil(v.value) || v.isInstance(t) {
		return v
	}
	return v.Validate(false,
		describef(description, "{argumentName} should be of type %s", t.String()),
		"The actual type is "+reflect.TypeOf(any(v.value)).String()+".",
		ViolationDefault,
	)
}

// IsNotOfType checks that the dynamic type of the value is not assignable
// to t. A nil value always passes.
func (v *Validator[T]) IsNotOfType(t reflect.Type, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	if t == nil {
		return v.unsupported("IsNotOfType(nil)")
	}
	if isNil(v.value) || !v.isInstance(t) {
		return v
	}
	return v.Validate(false,
		describef(description, "{argumentName} should not be of type %s", t.String()),
		"",
		ViolationDefault,
	)
}
