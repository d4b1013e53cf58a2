package condition

// orderCheck evaluates pass against the comparer result of value vs bound.
func (v *Validator[T]) orderCheck(bound T, pass func(c int) bool, violation Violation, description []string, format string) *Validator[T] {
	if v.done() {
		return v
	}
	compare, err := v.comparer()
	if err != nil {
		return v.misuse(err)
	}
	if pass(compare(v.value, bound)) {
		return v
	}
	return v.Validate(false, describef(description, format, display(bound)), actualValue(v.value), violation)
}

// rangeViolation is OutOfRange, or InvalidEnum for enum types.
func (v *Validator[T]) rangeViolation() Violation {
	if infoFor[T]().enum {
		return ViolationInvalidEnum
	}
	return ViolationOutOfRange
}

// IsInRange checks min <= value <= max. Enum values outside the range
// report InvalidEnumArgumentError instead of ArgumentOutOfRangeError.
func (v *Validator[T]) IsInRange(min, max T, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	compare, err := v.comparer()
	if err != nil {
		return v.misuse(err)
	}
	if compare(v.value, min) >= 0 && compare(v.value, max) <= 0 {
		return v
	}
	return v.Validate(false,
		describef(description, "{argumentName} should be in range (%s - %s)", display(min), display(max)),
		actualValue(v.value),
		v.rangeViolation(),
	)
}

// IsNotInRange checks that value < min or value > max.
func (v *Validator[T]) IsNotInRange(min, max T, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	compare, err := v.comparer()
	if err != nil {
		return v.misuse(err)
	}
	if compare(v.value, min) < 0 || compare(v.value, max) > 0 {
		return v
	}
	return v.Validate(false,
		describef(description, "{argumentName} should not be in range (%s - %s)", display(min), display(max)),
		actualValue(v.value),
		v.rangeViolation(),
	)
}

// IsGreaterThan checks value > bound.
func (v *Validator[T]) IsGreaterThan(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c > 0 }, ViolationOutOfRange,
		description, "{argumentName} should be greater than %s")
}

// IsNotGreaterThan checks value <= bound.
func (v *Validator[T]) IsNotGreaterThan(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c <= 0 }, ViolationOutOfRange,
		description, "{argumentName} should not be greater than %s")
}

// IsGreaterOrEqual checks value >= bound.
func (v *Validator[T]) IsGreaterOrEqual(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c >= 0 }, ViolationOutOfRange,
		description, "{argumentName} should be greater than or equal to %s")
}

// IsNotGreaterOrEqual checks value < bound.
func (v *Validator[T]) IsNotGreaterOrEqual(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c < 0 }, ViolationOutOfRange,
		description, "{argumentName} should not be greater than or equal to %s")
}

// IsLessThan checks value < bound.
func (v *Validator[T]) IsLessThan(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c < 0 }, ViolationOutOfRange,
		description, "{argumentName} should be less than %s")
}

// IsNotLessThan checks value >= bound.
func (v *Validator[T]) IsNotLessThan(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c >= 0 }, ViolationOutOfRange,
		description, "{argumentName} should not be less than %s")
}

// IsLessOrEqual checks value <= bound.
func (v *Validator[T]) IsLessOrEqual(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c <= 0 }, ViolationOutOfRange,
		description, "{argumentName} should be less than or equal to %s")
}

// IsNotLessOrEqual checks value > bound.
func (v *Validator[T]) IsNotLessOrEqual(bound T, description ...string) *Validator[T] {
	return v.orderCheck(bound, func(c int) bool { return c > 0 }, ViolationOutOfRange,
		description, "{argumentName} should not be less than or equal to %s")
}

// equal resolves equality through the comparer when the type has one.
func (v *Validator[T]) equal(other T) bool {
	compare, err := v.comparer()
	if err != nil {
		compare = nil
	}
	return equalFor(compare)(v.value, other)
}

// IsEqualTo checks equality. A nil value compared with a non-nil target
// reports ArgumentNullError.
func (v *Validator[T]) IsEqualTo(other T, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	if v.equal(other) {
		return v
	}
	return v.Validate(false,
		describef(description, "{argumentName} should be equal to %s", display(other)),
		actualValue(v.value),
		ViolationDefault,
	)
}

// IsNotEqualTo checks inequality. A nil value passes against a non-nil target.
func (v *Validator[T]) IsNotEqualTo(other T, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	if !v.equal(other) {
		return v
	}
	return v.Validate(false,
		describef(description, "{argumentName} should not be equal to %s", display(other)),
		"",
		ViolationDefault,
	)
}
