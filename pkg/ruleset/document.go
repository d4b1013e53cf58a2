package ruleset

import "time"

// Kind selects the Go type a check's value and arguments are converted to.
type Kind string

const (
	KindNumber  Kind = "number"  // float64
	KindString  Kind = "string"  // string
	KindBool    Kind = "bool"    // bool
	KindUUID    Kind = "uuid"    // uuid.UUID
	KindTime    Kind = "time"    // time.Time, RFC 3339 or YYYY-MM-DD
	KindWeekday Kind = "weekday" // time.Weekday, by name or number
)

// Intent selects between precondition and postcondition errors.
type Intent string

const (
	IntentRequires Intent = "requires"
	IntentEnsures  Intent = "ensures"
)

// Document is a list of checks loaded from a rule file.
type Document struct {
	Checks []Check `json:"checks" yaml:"checks" toml:"checks"`
}

// Check validates one value against an ordered list of rules. Evaluation
// stops at the first failing rule.
type Check struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Intent Intent `json:"intent,omitempty" yaml:"intent,omitempty" toml:"intent,omitempty"`
	Kind   Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Value  any    `json:"value" yaml:"value" toml:"value"`
	Rules  []Rule `json:"rules" yaml:"rules" toml:"rules"`
}

// Rule names a check method and its arguments. Description, when set,
// replaces the built-in condition text and may use {argumentName}.
type Rule struct {
	Rule        string `json:"rule" yaml:"rule" toml:"rule"`
	Args        []any  `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// normalize brings decoder-specific scalars to one representation so every
// format yields the same Document: numbers become float64 and timestamps
// become RFC 3339 strings.
func (d *Document) normalize() {
	for i := range d.Checks {
		c := &d.Checks[i]
		c.Value = normalizeScalar(c.Value)
		for j := range c.Rules {
			args := c.Rules[j].Args
			for k := range args {
				args[k] = normalizeScalar(args[k])
			}
			if len(args) == 0 {
				c.Rules[j].Args = nil
			}
		}
	}
}

func normalizeScalar(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case time.Time:
		return n.Format(time.RFC3339Nano)
	}
	return v
}
