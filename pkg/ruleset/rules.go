package ruleset

import (
	"fmt"

	"github.com/dmitrymomot/conditions/pkg/condition"
)

// check method shapes, keyed by rule name
type (
	plainCheck[T any]  func(description ...string) *condition.Validator[T]
	boundCheck[T any]  func(bound T, description ...string) *condition.Validator[T]
	rangeCheck[T any]  func(min, max T, description ...string) *condition.Validator[T]
	lengthCheck[T any] func(length int, description ...string) *condition.Validator[T]
	textCheck[T any]   func(s string, description ...string) *condition.Validator[T]
)

func plainChecks[T any](v *condition.Validator[T]) map[string]plainCheck[T] {
	return map[string]plainCheck[T]{
		"is_null":                  v.IsNull,
		"is_not_null":              v.IsNotNull,
		"is_true":                  v.IsTrue,
		"is_false":                 v.IsFalse,
		"is_nan":                   v.IsNaN,
		"is_not_nan":               v.IsNotNaN,
		"is_infinity":              v.IsInfinity,
		"is_not_infinity":          v.IsNotInfinity,
		"is_positive_infinity":     v.IsPositiveInfinity,
		"is_not_positive_infinity": v.IsNotPositiveInfinity,
		"is_negative_infinity":     v.IsNegativeInfinity,
		"is_not_negative_infinity": v.IsNotNegativeInfinity,
		"is_empty":                 v.IsEmpty,
		"is_not_empty":             v.IsNotEmpty,
		"is_null_or_empty":         v.IsNullOrEmpty,
		"is_not_null_or_empty":     v.IsNotNullOrEmpty,
	}
}

func boundChecks[T any](v *condition.Validator[T]) map[string]boundCheck[T] {
	return map[string]boundCheck[T]{
		"is_greater_than":         v.IsGreaterThan,
		"is_not_greater_than":     v.IsNotGreaterThan,
		"is_greater_or_equal":     v.IsGreaterOrEqual,
		"is_not_greater_or_equal": v.IsNotGreaterOrEqual,
		"is_less_than":            v.IsLessThan,
		"is_not_less_than":        v.IsNotLessThan,
		"is_less_or_equal":        v.IsLessOrEqual,
		"is_not_less_or_equal":    v.IsNotLessOrEqual,
		"is_equal_to":             v.IsEqualTo,
		"is_not_equal_to":         v.IsNotEqualTo,
	}
}

func rangeChecks[T any](v *condition.Validator[T]) map[string]rangeCheck[T] {
	return map[string]rangeCheck[T]{
		"is_in_range":     v.IsInRange,
		"is_not_in_range": v.IsNotInRange,
	}
}

func lengthChecks[T any](v *condition.Validator[T]) map[string]lengthCheck[T] {
	return map[string]lengthCheck[T]{
		"has_length":           v.HasLength,
		"does_not_have_length": v.DoesNotHaveLength,
		"is_shorter_than":      v.IsShorterThan,
		"is_shorter_or_equal":  v.IsShorterOrEqual,
		"is_longer_than":       v.IsLongerThan,
		"is_longer_or_equal":   v.IsLongerOrEqual,
	}
}

func textChecks[T any](v *condition.Validator[T]) map[string]textCheck[T] {
	return map[string]textCheck[T]{
		"contains":            func(s string, d ...string) *condition.Validator[T] { return v.Contains(s, d...) },
		"does_not_contain":    func(s string, d ...string) *condition.Validator[T] { return v.DoesNotContain(s, d...) },
		"starts_with":         v.StartsWith,
		"does_not_start_with": v.DoesNotStartWith,
		"ends_with":           v.EndsWith,
		"does_not_end_with":   v.DoesNotEndWith,
	}
}

// apply runs rule r on v. It returns an error only when the rule itself is
// unusable; violations are recorded on v.
func apply[T any](v *condition.Validator[T], r Rule, conv func(any) (T, error)) error {
	var desc []string
	if r.Description != "" {
		desc = append(desc, r.Description)
	}

	if fn, ok := plainChecks(v)[r.Rule]; ok {
		if err := arity(r, 0); err != nil {
			return err
		}
		fn(desc...)
		return nil
	}
	if fn, ok := boundChecks(v)[r.Rule]; ok {
		if err := arity(r, 1); err != nil {
			return err
		}
		bound, err := argument(r, 0, conv)
		if err != nil {
			return err
		}
		fn(bound, desc...)
		return nil
	}
	if fn, ok := rangeChecks(v)[r.Rule]; ok {
		if err := arity(r, 2); err != nil {
			return err
		}
		lo, err := argument(r, 0, conv)
		if err != nil {
			return err
		}
		hi, err := argument(r, 1, conv)
		if err != nil {
			return err
		}
		fn(lo, hi, desc...)
		return nil
	}
	if fn, ok := lengthChecks(v)[r.Rule]; ok {
		if err := arity(r, 1); err != nil {
			return err
		}
		n, err := argument(r, 0, toInt)
		if err != nil {
			return err
		}
		fn(n, desc...)
		return nil
	}
	if fn, ok := textChecks(v)[r.Rule]; ok {
		if err := arity(r, 1); err != nil {
			return err
		}
		s, err := argument(r, 0, toString)
		if err != nil {
			return err
		}
		fn(s, desc...)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownRule, r.Rule)
}

func arity(r Rule, n int) error {
	if len(r.Args) != n {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrInvalidArgument, r.Rule, n, len(r.Args))
	}
	return nil
}

func argument[A any](r Rule, i int, conv func(any) (A, error)) (A, error) {
	a, err := conv(r.Args[i])
	if err != nil {
		return a, fmt.Errorf("%w: %s argument %d: %w", ErrInvalidArgument, r.Rule, i+1, err)
	}
	return a, nil
}
