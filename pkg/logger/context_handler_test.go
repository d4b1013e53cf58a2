package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/conditions/pkg/logger"
)

type idKey struct{}

func TestNewContextHandler(t *testing.T) {
	t.Parallel()

	t.Run("no extractors returns the handler", func(t *testing.T) {
		t.Parallel()
		next := slog.NewTextHandler(&bytes.Buffer{}, nil)
		assert.Same(t, next, logger.NewContextHandler(next, nil, nil))
	})

	t.Run("extractors survive attrs and groups", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		extract := func(ctx context.Context) (slog.Attr, bool) {
			if id, ok := ctx.Value(idKey{}).(string); ok {
				return slog.String("id", id), true
			}
			return slog.Attr{}, false
		}
		h := logger.NewContextHandler(slog.NewTextHandler(buf, nil), extract)
		log := slog.New(h).With(logger.Component("ruleset")).WithGroup("g")

		ctx := context.WithValue(context.Background(), idKey{}, "abc")
		log.InfoContext(ctx, "one")
		log.InfoContext(context.Background(), "two")

		out := buf.String()
		assert.Contains(t, out, "component=ruleset")
		assert.Contains(t, out, "g.id=abc")
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("id=abc")))
	})
}
