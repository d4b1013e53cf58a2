package condition

import (
	"fmt"
	"reflect"
	"strings"
)

// ArgumentNamePlaceholder is replaced with the argument name in condition
// descriptions.
const ArgumentNamePlaceholder = "{argumentName}"

// BuildMessage joins a condition and optional detail into full sentences:
// "x should hold." or "x should hold. The actual value is 3."
func BuildMessage(condition, additional string) string {
	if additional == "" {
		return condition + "."
	}
	if !strings.HasSuffix(additional, ".") {
		additional += "."
	}
	return condition + ". " + additional
}

// postconditionMessage wraps the condition in the fixed postcondition phrase.
func postconditionMessage(condition, additional string) string {
	return BuildMessage(fmt.Sprintf("Postcondition '%s' failed", condition), additional)
}

// enumMessage annotates a message with the argument name.
func enumMessage(message, argumentName string) string {
	return fmt.Sprintf("%s Parameter name: %s.", message, argumentName)
}

// substituteName replaces the placeholder with name. Empty names are
// substituted literally.
func substituteName(condition, name string) string {
	return strings.ReplaceAll(condition, ArgumentNamePlaceholder, name)
}

// describe returns the caller's description override, or condition.
func describe(description []string, condition string) string {
	if len(description) > 0 && description[0] != "" {
		return description[0]
	}
	return condition
}

// describef is like describe but formats the default template.
func describef(description []string, format string, args ...any) string {
	if len(description) > 0 && description[0] != "" {
		return description[0]
	}
	return fmt.Sprintf(format, args...)
}

// display formats a value for a message using the configured locale.
// Non-nil pointers are dereferenced so messages show values, not addresses.
func display(v any) string {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "nil"
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return "nil"
	}
	return current().printer.Sprintf("%v", rv.Interface())
}

func actualValue(v any) string {
	return "The actual value is " + display(v) + "."
}
