package condition

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// lengthOf returns the length of strings (in runes), slices, arrays, maps and
// channels, dereferencing pointers. Nil slices and maps have length 0 and
// isNil set.
func lengthOf(value any) (n int, isNil, ok bool) {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, true, hasLength(rv.Type().Elem().Kind())
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return 0, true, true
	}
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), false, true
	case reflect.Slice, reflect.Map, reflect.Chan:
		return rv.Len(), rv.IsNil(), true
	case reflect.Array:
		return rv.Len(), false, true
	}
	return 0, false, false
}

func hasLength(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Chan, reflect.Array:
		return true
	}
	return false
}

// lengthCheck runs pass over the length. Nil pointers fail unless allowNil;
// nil slices and maps are measured as empty.
func (v *Validator[T]) lengthCheck(check string, allowNil bool, pass func(n int) bool, description []string, format string, args ...any) *Validator[T] {
	if v.done() {
		return v
	}
	n, null, ok := lengthOf(v.value)
	if !ok {
		return v.unsupported(check)
	}
	nilPointer := null && !isNilCollection(v.value)
	if (allowNil && null) || (!nilPointer && pass(n)) {
		return v
	}
	additional := ""
	if !null {
		additional = fmt.Sprintf("The actual length is %d.", n)
	}
	return v.Validate(false, describef(description, format, args...), additional, ViolationDefault)
}

func isNilCollection(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsEmpty checks for zero length. Nil slices and maps are empty; nil
// pointers are not.
func (v *Validator[T]) IsEmpty(description ...string) *Validator[T] {
	return v.lengthCheck("IsEmpty", false, func(n int) bool { return n == 0 },
		description, "{argumentName} should be empty")
}

// IsNotEmpty checks for a non-zero length. Nil values fail.
func (v *Validator[T]) IsNotEmpty(description ...string) *Validator[T] {
	return v.lengthCheck("IsNotEmpty", false, func(n int) bool { return n > 0 },
		description, "{argumentName} should not be empty")
}

// IsNullOrEmpty passes for any nil value or zero length.
func (v *Validator[T]) IsNullOrEmpty(description ...string) *Validator[T] {
	return v.lengthCheck("IsNullOrEmpty", true, func(n int) bool { return n == 0 },
		description, "{argumentName} should be nil or empty")
}

// IsNotNullOrEmpty checks that the value is neither nil nor empty.
func (v *Validator[T]) IsNotNullOrEmpty(description ...string) *Validator[T] {
	return v.lengthCheck("IsNotNullOrEmpty", false, func(n int) bool { return n > 0 },
		description, "{argumentName} should not be nil or empty")
}

// HasLength checks for an exact length. Strings are measured in runes.
func (v *Validator[T]) HasLength(length int, description ...string) *Validator[T] {
	return v.lengthCheck("HasLength", false, func(n int) bool { return n == length },
		description, "{argumentName} should have a length of %d", length)
}

// DoesNotHaveLength checks that the length differs from length.
func (v *Validator[T]) DoesNotHaveLength(length int, description ...string) *Validator[T] {
	return v.lengthCheck("DoesNotHaveLength", false, func(n int) bool { return n != length },
		description, "{argumentName} should not have a length of %d", length)
}

// IsShorterThan checks length < length.
func (v *Validator[T]) IsShorterThan(length int, description ...string) *Validator[T] {
	return v.lengthCheck("IsShorterThan", false, func(n int) bool { return n < length },
		description, "{argumentName} should be shorter than %d", length)
}

// IsShorterOrEqual checks length <= length.
func (v *Validator[T]) IsShorterOrEqual(length int, description ...string) *Validator[T] {
	return v.lengthCheck("IsShorterOrEqual", false, func(n int) bool { return n <= length },
		description, "{argumentName} should be shorter than or equal to %d", length)
}

// IsLongerThan checks length > length.
func (v *Validator[T]) IsLongerThan(length int, description ...string) *Validator[T] {
	return v.lengthCheck("IsLongerThan", false, func(n int) bool { return n > length },
		description, "{argumentName} should be longer than %d", length)
}

// IsLongerOrEqual checks length >= length.
func (v *Validator[T]) IsLongerOrEqual(length int, description ...string) *Validator[T] {
	return v.lengthCheck("IsLongerOrEqual", false, func(n int) bool { return n >= length },
		description, "{argumentName} should be longer than or equal to %d", length)
}

// stringOf extracts a string from string kinds and pointers to them.
func stringOf(value any) (s string, isNil, ok bool) {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", true, rv.Type().Elem().Kind() == reflect.String
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "", true, true
	}
	if rv.Kind() != reflect.String {
		return "", false, false
	}
	return rv.String(), false, true
}

// contains reports whether a string contains a substring, a slice or array
// holds an element, or a map holds a key.
func contains(value any, element any) (found, isNil, ok bool) {
	if s, null, isString := stringOf(value); isString {
		sub, subOK := element.(string)
		if !subOK {
			return false, null, false
		}
		return !null && strings.Contains(s, sub), null, true
	}

	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false, true, true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if reflect.DeepEqual(rv.Index(i).Interface(), element) {
				return true, false, true
			}
		}
		return false, rv.Kind() == reflect.Slice && rv.IsNil(), true
	case reflect.Map:
		key := reflect.ValueOf(element)
		// Unhashable keys, such as a slice in a map[any]V, cannot be present.
		if !key.IsValid() || !key.Type().AssignableTo(rv.Type().Key()) || !key.Comparable() {
			return false, rv.IsNil(), true
		}
		return rv.MapIndex(key).IsValid(), rv.IsNil(), true
	}
	return false, false, false
}

// Contains checks that a string holds a substring, a slice or array holds an
// element (deep equality), or a map holds a key.
func (v *Validator[T]) Contains(element any, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	found, _, ok := contains(v.value, element)
	if !ok {
		return v.unsupported("Contains")
	}
	if found {
		return v
	}
	return v.Validate(false, describef(description, "{argumentName} should contain %s", display(element)), "", ViolationDefault)
}

// DoesNotContain is the negation of Contains. Nil values pass.
func (v *Validator[T]) DoesNotContain(element any, description ...string) *Validator[T] {
	if v.done() {
		return v
	}
	found, _, ok := contains(v.value, element)
	if !ok {
		return v.unsupported("DoesNotContain")
	}
	if !found {
		return v
	}
	return v.Validate(false, describef(description, "{argumentName} should not contain %s", display(element)), "", ViolationDefault)
}

func (v *Validator[T]) affixCheck(check string, want bool, match func(s string) bool, description []string, format string, affix string) *Validator[T] {
	if v.done() {
		return v
	}
	s, null, ok := stringOf(v.value)
	if !ok {
		return v.unsupported(check)
	}
	if null {
		// A nil string has no prefix or suffix.
		if !want {
			return v
		}
	} else if match(s) == want {
		return v
	}
	return v.Validate(false, describef(description, format, affix), actualValue(v.value), ViolationDefault)
}

// StartsWith checks that a string starts with prefix. A nil string fails.
func (v *Validator[T]) StartsWith(prefix string, description ...string) *Validator[T] {
	return v.affixCheck("StartsWith", true, func(s string) bool { return strings.HasPrefix(s, prefix) },
		description, "{argumentName} should start with '%s'", prefix)
}

// DoesNotStartWith checks that a string does not start with prefix. A nil string passes.
func (v *Validator[T]) DoesNotStartWith(prefix string, description ...string) *Validator[T] {
	return v.affixCheck("DoesNotStartWith", false, func(s string) bool { return strings.HasPrefix(s, prefix) },
		description, "{argumentName} should not start with '%s'", prefix)
}

// EndsWith checks that a string ends with suffix. A nil string fails.
func (v *Validator[T]) EndsWith(suffix string, description ...string) *Validator[T] {
	return v.affixCheck("EndsWith", true, func(s string) bool { return strings.HasSuffix(s, suffix) },
		description, "{argumentName} should end with '%s'", suffix)
}

// DoesNotEndWith checks that a string does not end with suffix. A nil string passes.
func (v *Validator[T]) DoesNotEndWith(suffix string, description ...string) *Validator[T] {
	return v.affixCheck("DoesNotEndWith", false, func(s string) bool { return strings.HasSuffix(s, suffix) },
		description, "{argumentName} should not end with '%s'", suffix)
}
