package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/conditions/pkg/logger"
)

func writeRules(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEvaluateFile(t *testing.T) {
	discard := slog.New(slog.DiscardHandler)

	t.Run("all checks pass", func(t *testing.T) {
		path := writeRules(t, "rules.yaml", `
checks:
  - name: port
    kind: number
    value: 8080
    rules:
      - rule: is_in_range
        args: [1, 65535]
`)
		out := &bytes.Buffer{}
		require.NoError(t, evaluateFile(context.Background(), discard, out, path, false))
		assert.Equal(t, "PASS port\n", out.String())
	})

	t.Run("failures are reported", func(t *testing.T) {
		path := writeRules(t, "rules.json", `{"checks": [
			{"name": "a", "kind": "number", "value": 1, "rules": [{"rule": "is_in_range", "args": [2, 4]}]},
			{"name": "b", "kind": "bool", "value": true, "rules": [{"rule": "is_true"}]}
		]}`)
		out := &bytes.Buffer{}
		err := evaluateFile(context.Background(), discard, out, path, true)
		assert.ErrorIs(t, err, errChecksFailed)
		assert.Equal(t,
			"FAIL a [argument_out_of_range] a should be in range (2 - 4). The actual value is 1.\n",
			out.String())
	})

	t.Run("unreadable file", func(t *testing.T) {
		err := evaluateFile(context.Background(), discard, io.Discard, filepath.Join(t.TempDir(), "none.toml"), false)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errChecksFailed)
	})

	t.Run("run id is logged", func(t *testing.T) {
		path := writeRules(t, "rules.toml", "[[checks]]\nname = \"n\"\nkind = \"number\"\nvalue = 1\n")
		logs := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(logs),
			logger.WithContextValue("run_id", runIDKey{}),
		)
		ctx := context.WithValue(context.Background(), runIDKey{}, "run-1")

		require.NoError(t, evaluateFile(ctx, log, io.Discard, path, false))
		assert.Contains(t, logs.String(), `"run_id":"run-1"`)
		assert.Contains(t, logs.String(), `"msg":"rule file evaluated"`)
	})
}

func TestCommands(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		out := &bytes.Buffer{}
		rootCmd.SetOut(out)
		rootCmd.SetArgs([]string{"version"})
		t.Cleanup(func() { rootCmd.SetOut(nil) })

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "condcheck "+Version)
	})

	t.Run("check requires a file", func(t *testing.T) {
		rootCmd.SetOut(io.Discard)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs([]string{"check"})
		t.Cleanup(func() {
			rootCmd.SetOut(nil)
			rootCmd.SetErr(nil)
		})

		assert.Error(t, rootCmd.Execute())
	})

	t.Run("check command", func(t *testing.T) {
		t.Setenv("CONDITIONS_LOG_LEVEL", "error")
		path := writeRules(t, "rules.yaml", "checks:\n  - name: s\n    kind: string\n    value: abc\n    rules:\n      - rule: has_length\n        args: [3]\n")

		out := &bytes.Buffer{}
		rootCmd.SetOut(out)
		rootCmd.SetErr(io.Discard)
		rootCmd.SetArgs([]string{"check", path})
		t.Cleanup(func() {
			rootCmd.SetOut(nil)
			rootCmd.SetErr(nil)
		})

		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "PASS s\n", out.String())
	})
}
