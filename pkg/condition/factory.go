package condition

// failure describes a violated condition. The condition text already has the
// argument name substituted.
type failure struct {
	argumentName string
	condition    string
	additional   string
	violation    Violation
	valueIsNull  bool
}

// errorFactory turns a failure into the error recorded by the validator. The
// factory is chosen when the validator is created and fixes its intent.
type errorFactory interface {
	newError(f failure) error
}

// preconditionFactory maps violations onto the argument error kinds.
type preconditionFactory struct{}

func (preconditionFactory) newError(f failure) error {
	message := BuildMessage(f.condition, f.additional)

	switch f.violation {
	case ViolationOutOfRange:
		return &ArgumentOutOfRangeError{ArgumentName: f.argumentName, Message: message}
	case ViolationInvalidEnum:
		return &InvalidEnumArgumentError{
			ArgumentName: f.argumentName,
			Message:      enumMessage(message, f.argumentName),
		}
	}

	if f.valueIsNull {
		return &ArgumentNullError{ArgumentName: f.argumentName, Message: message}
	}
	return &ArgumentInvalidError{ArgumentName: f.argumentName, Message: message}
}

// postconditionFactory ignores the violation and nil-ness.
type postconditionFactory struct{}

func (postconditionFactory) newError(f failure) error {
	return &PostconditionFailedError{Message: postconditionMessage(f.condition, f.additional)}
}

// customFactory builds the caller's error type from the message alone.
type customFactory struct {
	alt *Alternative
}

func (c customFactory) newError(f failure) error {
	message := BuildMessage(f.condition, f.additional)
	if err := c.alt.newErr(message); !isNil(err) {
		return err
	}
	// A nil result must not hide the failure.
	return preconditionFactory{}.newError(f)
}
