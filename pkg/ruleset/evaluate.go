package ruleset

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/conditions/pkg/condition"
)

// Outcome classifies a check result.
type Outcome string

const (
	OutcomePassed              Outcome = "passed"
	OutcomeArgumentNull        Outcome = "argument_null"
	OutcomeArgumentOutOfRange  Outcome = "argument_out_of_range"
	OutcomeInvalidEnumArgument Outcome = "invalid_enum_argument"
	OutcomeArgumentInvalid     Outcome = "argument_invalid"
	OutcomePostconditionFailed Outcome = "postcondition_failed"
	// OutcomeConfiguration marks a broken check: unknown rule, kind or
	// intent, a bad argument, or a rule the value kind does not support.
	OutcomeConfiguration Outcome = "configuration"
)

// Result is the outcome of one check.
type Result struct {
	Check   string
	Rule    string // failing rule, empty when passed
	Outcome Outcome
	Err     error
}

// Passed reports whether every rule of the check held.
func (r Result) Passed() bool { return r.Err == nil }

// Message returns the error text, or "" when the check passed.
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Report collects the results of a document, in document order.
type Report struct {
	Results []Result
}

// Failed reports whether any check failed or was misconfigured.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return true
		}
	}
	return false
}

// Failures returns the results that did not pass.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Evaluate runs every check of doc through the condition package. A check
// stops at its first failing rule; other checks still run.
func Evaluate(doc *Document) Report {
	if doc == nil {
		return Report{}
	}
	report := Report{Results: make([]Result, 0, len(doc.Checks))}
	for _, c := range doc.Checks {
		report.Results = append(report.Results, evaluateCheck(c))
	}
	return report
}

func evaluateCheck(c Check) Result {
	switch c.Kind {
	case KindNumber:
		return run(c, toNumber)
	case KindString:
		return run(c, toString)
	case KindBool:
		return run(c, toBool)
	case KindUUID:
		return run(c, toUUID)
	case KindTime:
		return run(c, toTime)
	case KindWeekday:
		return run(c, toWeekday)
	}
	return failed(c, "", fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind))
}

// run validates c.Value as T, or as a nil *T when the value is null.
func run[T any](c Check, conv func(any) (T, error)) Result {
	if c.Value == nil {
		return check(c, (*T)(nil), pointerTo(conv))
	}
	value, err := conv(c.Value)
	if err != nil {
		return failed(c, "", fmt.Errorf("%w: value: %w", ErrInvalidArgument, err))
	}
	return check(c, value, conv)
}

func check[T any](c Check, value T, conv func(any) (T, error)) Result {
	var name []string
	if c.Name != "" {
		name = append(name, c.Name)
	}

	var v *condition.Validator[T]
	switch c.Intent {
	case "", IntentRequires:
		v = condition.Requires(value, name...)
	case IntentEnsures:
		v = condition.Ensures(value, name...)
	default:
		return failed(c, "", fmt.Errorf("%w: %q", ErrUnknownIntent, c.Intent))
	}

	for _, r := range c.Rules {
		if err := apply(v, r, conv); err != nil {
			return failed(c, r.Rule, err)
		}
		if v.Failed() {
			return failed(c, r.Rule, v.Err())
		}
	}
	return Result{Check: c.Name, Outcome: OutcomePassed}
}

func failed(c Check, rule string, err error) Result {
	return Result{Check: c.Name, Rule: rule, Outcome: classify(err), Err: err}
}

func classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomePassed
	case errors.Is(err, condition.ErrArgumentNull):
		return OutcomeArgumentNull
	case errors.Is(err, condition.ErrInvalidEnumArgument):
		return OutcomeInvalidEnumArgument
	case errors.Is(err, condition.ErrArgumentOutOfRange):
		return OutcomeArgumentOutOfRange
	case errors.Is(err, condition.ErrArgumentInvalid):
		return OutcomeArgumentInvalid
	case errors.Is(err, condition.ErrPostconditionFailed):
		return OutcomePostconditionFailed
	}
	return OutcomeConfiguration
}
