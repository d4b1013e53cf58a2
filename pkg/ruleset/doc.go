// Package ruleset evaluates declarative rule documents through the condition
// package, so checks can be kept in configuration files and reviewed
// without writing Go.
//
// A document lists checks. Each check names a value, its kind and an ordered
// list of rules:
//
//	checks:
//	  - name: age
//	    intent: requires        # requires (default) or ensures
//	    kind: number            # number, string, bool, uuid, time or weekday
//	    value: 17
//	    rules:
//	      - rule: is_greater_or_equal
//	        args: [18]
//	        description: "{argumentName} must be an adult"
//
// Rule names are the snake_case forms of the Validator methods, for example
// is_in_range, is_not_null, has_length or starts_with. Arguments are
// converted to the check's kind; length rules take integers and string rules
// take strings. A null value is validated as a nil pointer of the kind, so
// is_not_null reports an argument null error.
//
// # Parsing
//
// YAMLParser, JSONParser and TOMLParser implement Parser. NewParserForFile
// picks one by file extension and ParseFile reads and parses in one step.
// Parsers reject unknown fields and normalize scalars, so the three formats
// produce identical Documents.
//
// # Evaluation
//
// Evaluate runs every check and returns a Report. Each Result carries the
// failing rule, an Outcome mirroring the condition error kinds and the error
// itself. Broken checks (unknown rule, kind or intent, bad arguments, or a
// rule the kind does not support) have OutcomeConfiguration.
package ruleset
