package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":    zapcore.DebugLevel,
		" INFO ":   zapcore.InfoLevel,
		"warn":     zapcore.WarnLevel,
		"error":    zapcore.ErrorLevel,
		"panic":    zapcore.PanicLevel,
		"fatal":    zapcore.FatalLevel,
		"dpanic":   zapcore.DPanicLevel,
		"\terror ": zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestContextHelpers checks that named loggers and fields travel in the context.
func TestContextHelpers(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))

	var buf bytes.Buffer

	ctx := ToContext(context.Background(), New(&buf, zapcore.DebugLevel))
	ctx = WithName(ctx, "converter")
	ctx = WithKV(ctx, "fixture", "two-state")

	InfoKV(ctx, "Converted", "transitions", 4)

	out := buf.String()
	require.Contains(t, out, "converter")
	require.Contains(t, out, "Converted")
	require.Contains(t, out, "two-state")
	require.Contains(t, out, "transitions")
}
