package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/conditions/pkg/condition"
	"github.com/dmitrymomot/conditions/pkg/config"
	"github.com/dmitrymomot/conditions/pkg/logger"
	"github.com/dmitrymomot/conditions/pkg/ruleset"
)

type runIDKey struct{}

var checkFlags struct {
	envFiles []string
	quiet    bool
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Evaluate a rule file",
	Long: `Evaluate every check in a rule file and print one line per check.

The command exits with status 1 when any check fails or is misconfigured.

Examples:
  # Evaluate a YAML rule file
  condcheck check rules.yaml

  # Use German number formatting in messages
  CONDITIONS_LOCALE=de condcheck check rules.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringSliceVar(&checkFlags.envFiles, "env-file", nil, "env files to load before reading settings")
	checkCmd.Flags().BoolVarP(&checkFlags.quiet, "quiet", "q", false, "print failed checks only")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if len(checkFlags.envFiles) > 0 {
		if err := config.LoadEnv(checkFlags.envFiles...); err != nil {
			return err
		}
	}

	var settings config.Settings
	if err := config.ForceReload(&settings); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logOpts, err := settings.LoggerOptions("condcheck")
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	log := logger.New(append(logOpts,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	)...)

	condOpts, err := settings.Options(log.With(logger.Component("condition")))
	if err != nil {
		return err
	}
	condition.Configure(condOpts...)

	ctx := context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString())
	return evaluateFile(ctx, log, cmd.OutOrStdout(), args[0], checkFlags.quiet)
}

func evaluateFile(ctx context.Context, log *slog.Logger, out io.Writer, path string, quiet bool) error {
	log.DebugContext(ctx, "parsing rule file", logger.File(path))

	doc, err := ruleset.ParseFile(ctx, path)
	if err != nil {
		log.ErrorContext(ctx, "rule file rejected", logger.File(path), logger.Error(err))
		return err
	}

	report := ruleset.Evaluate(doc)
	for _, res := range report.Results {
		if res.Passed() {
			if !quiet {
				fmt.Fprintf(out, "PASS %s\n", res.Check)
			}
			continue
		}
		fmt.Fprintf(out, "FAIL %s [%s] %s\n", res.Check, res.Outcome, res.Message())
		log.DebugContext(ctx, "check failed",
			logger.Argument(res.Check),
			logger.Rule(res.Rule),
			logger.Violation(string(res.Outcome)),
		)
	}

	failures := len(report.Failures())
	log.InfoContext(ctx, "rule file evaluated",
		logger.File(path),
		slog.Int("checks", len(report.Results)),
		slog.Int("failed", failures),
	)
	if failures > 0 {
		return errChecksFailed
	}
	return nil
}
