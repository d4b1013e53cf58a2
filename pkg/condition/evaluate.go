package condition

// Evaluate checks an already computed condition about the value.
func (v *Validator[T]) Evaluate(ok bool, description ...string) *Validator[T] {
	if v.done() || ok {
		return v
	}
	return v.Validate(false, describe(description, "{argumentName} should be valid"), actualValue(v.value), ViolationDefault)
}

// EvaluateFunc checks that fn holds for the value. A nil fn fails.
func (v *Validator[T]) EvaluateFunc(fn func(T) bool, description ...string) *Validator[T] {
	if v.done() || (fn != nil && fn(v.value)) {
		return v
	}
	return v.Validate(false, describe(description, "the given condition should hold for {argumentName}"), actualValue(v.value), ViolationDefault)
}
