package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("unknown")
	require.False(t, ok)
}

// TestFromContext verifies fallback to the global logger and round-tripping a scoped logger.
func TestFromContext(t *testing.T) {
	t.Parallel()

	require.Same(t, global, FromContext(context.Background()))
	//nolint:staticcheck // Nil context fallback is part of the contract.
	require.Same(t, global, FromContext(nil))

	scoped := New(nil).Named("scoped")
	ctx := ToContext(context.Background(), scoped)
	require.Same(t, scoped, FromContext(ctx))
}

// TestWithKV verifies the derived logger is stored back in the context.
func TestWithKV(t *testing.T) {
	t.Parallel()

	ctx := WithKV(context.Background(), "event_id", "abc")
	require.NotSame(t, global, FromContext(ctx))
}
