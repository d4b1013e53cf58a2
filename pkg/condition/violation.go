package condition

// Violation classifies why a check failed. Precondition validators use it to
// pick the error kind; postcondition and custom validators ignore it.
type Violation uint8

const (
	// ViolationDefault is used by equality, null, type, boolean, float,
	// length and custom checks.
	ViolationDefault Violation = iota
	// ViolationOutOfRange is used by ordering and range checks.
	ViolationOutOfRange
	// ViolationInvalidEnum is used by range checks over enum types.
	ViolationInvalidEnum
)

func (v Violation) String() string {
	switch v {
	case ViolationOutOfRange:
		return "out_of_range"
	case ViolationInvalidEnum:
		return "invalid_enum"
	default:
		return "default"
	}
}
