// Package condition provides fluent Design by Contract checks for function
// arguments (preconditions) and results (postconditions).
//
// A check chain starts with Requires or Ensures, which wrap a value together
// with its argument name. Every check returns the same *Validator so calls can
// be chained; the first failing check records an error and later checks are
// skipped.
//
//	func Transfer(from, to *Account, amount int64) error {
//		if err := condition.Requires(from, "from").IsNotNull().Err(); err != nil {
//			return err
//		}
//		if err := condition.Requires(amount, "amount").IsGreaterThan(0).IsLessOrEqual(from.Balance).Err(); err != nil {
//			return err
//		}
//		...
//	}
//
// Must returns the value or panics with the recorded error, for call sites
// where a violated contract is a programming error:
//
//	port := condition.Requires(cfg.Port, "port").IsInRange(1, 65535).Must()
//
// # Errors
//
// Precondition failures are reported as one of four argument errors, chosen
// by the check family and the value:
//
//   - ArgumentOutOfRangeError for ordering and range checks
//   - InvalidEnumArgumentError for range checks over enum types (named integer
//     types with a String method, such as time.Weekday)
//   - ArgumentNullError when any other check fails on a nil value
//   - ArgumentInvalidError otherwise
//
// All four match ErrArgumentInvalid with errors.Is, and each matches its own
// sentinel. Postcondition failures are always PostconditionFailedError and
// their message starts with "Postcondition '<condition>' failed.".
//
// WithErrorOnFailure binds a constructor for a caller-chosen error type; use
// the returned Alternative with RequiresWith to report every failure with that
// type instead:
//
//	var invalidOperation = condition.MustWithErrorOnFailure(NewInvalidOperationError)
//
//	err := condition.RequiresWith(invalidOperation, n, "n").IsGreaterOrEqual(0).Err()
//
// # Messages
//
// Messages are full sentences built from a condition and an optional detail,
// for example "amount should be greater than 0. The actual value is -5.".
// Every check accepts an optional description that replaces the built-in
// condition; "{argumentName}" in it is replaced with the argument name.
// Values are formatted with golang.org/x/text/message for the locale set by
// WithLocale.
//
// # Comparers
//
// Ordering checks use DefaultComparer, which is resolved once per type and
// cached for the life of the process. Types with a Compare(T) int method
// (time.Time, for example) use it; built-in ordered kinds, pointers to them and
// arrays or slices of them are ordered by value. Using overrides the comparer
// for a single chain.
//
// # Extending
//
// Validate is the primitive behind every check and can be used to write
// additional checks outside this package.
package condition
