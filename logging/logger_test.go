package logging_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/crysym/logging"
)

// TestLoggerFromCore routes entries through an observer core.
func TestLoggerFromCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.NewLoggerFromCore(core).Named("crystal").With(logging.String("title", "fcc"))

	l.Debug("progress", logging.Int("op", 100), logging.Float64("tol", 1e-5))
	l.Warn("overwrite", logging.Bool("nonEmpty", true), logging.Err(errors.New("boom")))

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	require.Equal(t, "crystal", entries[0].LoggerName)
	require.Equal(t, "fcc", entries[0].ContextMap()["title"])
	require.Equal(t, int64(100), entries[0].ContextMap()["op"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
	require.Equal(t, "boom", entries[1].ContextMap()["error"])
}

// TestParseLevel maps names to zap levels.
func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, logging.ParseLevel("DEBUG"))
	require.Equal(t, zapcore.WarnLevel, logging.ParseLevel("warn"))
	require.Equal(t, zapcore.ErrorLevel, logging.ParseLevel("error"))
	require.Equal(t, zapcore.InfoLevel, logging.ParseLevel("verbose"))
}

// TestNewLogger builds both encodings.
func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := logging.NewLogger(logging.Config{Level: "debug", Format: format})
		require.NoError(t, err)
		require.NotNil(t, l)
	}
}

// TestDefault checks SetDefault ignores nil.
func TestDefault(t *testing.T) {
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	nop := logging.NewNopLogger()
	logging.SetDefault(nop)
	require.Equal(t, nop, logging.Default())
	logging.SetDefault(nil)
	require.Equal(t, nop, logging.Default())
}
