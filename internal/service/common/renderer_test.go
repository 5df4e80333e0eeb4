//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/moore-mealy/internal/config"
	"github.com/oshokin/moore-mealy/internal/fixtures"
	"github.com/oshokin/moore-mealy/internal/logger"
	"github.com/oshokin/moore-mealy/internal/render"
)

// TestNewRenderer prefers the override format over the configured one.
func TestNewRenderer(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	r, err := NewRenderer(cfg, OutputOptions{})
	require.NoError(t, err)
	require.Equal(t, render.FormatText, r.Format())

	r, err = NewRenderer(cfg, OutputOptions{Format: "mermaid"})
	require.NoError(t, err)
	require.Equal(t, render.FormatMermaid, r.Format())

	_, err = NewRenderer(cfg, OutputOptions{Format: "svg"})
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

// TestWriteFixtureList aligns descriptions after the longest name.
func TestWriteFixtureList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, WriteFixtureList(&buf, []fixtures.Fixture{
		{Name: "a", Description: "first"},
		{Name: "abc", Description: "second"},
	}))
	require.Equal(t, "a    first\nabc  second\n", buf.String())
}

// TestApplyLogLevel reports the level through the context logger.
func TestApplyLogLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := logger.ToContext(context.Background(), logger.New(&buf, zapcore.DebugLevel))
	ApplyLogLevel(ctx, config.Default())

	require.Equal(t, zapcore.WarnLevel, logger.Level())
	require.Contains(t, buf.String(), "Log level set to warn")
}
