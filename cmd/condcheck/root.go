package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errChecksFailed makes the process exit non-zero without printing anything
// beyond the report itself.
var errChecksFailed = errors.New("one or more checks failed")

var rootCmd = &cobra.Command{
	Use:   "condcheck",
	Short: "Evaluate precondition and postcondition rule files",
	Long: `condcheck runs the checks declared in a rule document and reports every
violation with the same messages and error kinds the condition package
produces in code.

Rule documents may be written in YAML, JSON or TOML.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
