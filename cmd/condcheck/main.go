// Condcheck evaluates declarative rule documents with the condition package.
//
// Usage:
//
//	# Evaluate a rule file (YAML, JSON or TOML)
//	condcheck check rules.yaml
//
//	# Load settings from an env file and print failures only
//	condcheck check --env-file .env.ci --quiet rules.toml
//
//	# Show version information
//	condcheck version
//
// Settings come from CONDITIONS_* environment variables, see pkg/config.
package main

func main() {
	Execute()
}
