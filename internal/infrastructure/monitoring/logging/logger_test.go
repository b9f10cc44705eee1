package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestLevels(t *testing.T) {
	log, logs := newObserved(zapcore.InfoLevel)

	log.Debug("hidden")
	log.Info("visible", String("component", "dialog"))
	log.Warn("degraded")
	log.Error("failed", Err(assert.AnError))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "visible", entries[0].Message)
	assert.Equal(t, "dialog", entries[0].ContextMap()["component"])
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, assert.AnError.Error(), entries[2].ContextMap()["error"])
}

func TestWithAddsPersistentFields(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)

	child := log.With(String("session_id", "abc"))
	child.Info("turn handled")
	log.Info("no session field")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ContextMap()["session_id"])
	_, ok := entries[1].ContextMap()["session_id"]
	assert.False(t, ok)
}

func TestNamed(t *testing.T) {
	log, logs := newObserved(zapcore.DebugLevel)
	log.Named("http").Named("chat").Info("routed")
	require.Len(t, logs.All(), 1)
	assert.Equal(t, "http.chat", logs.All()[0].LoggerName)
}

func TestErrNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestNewLoggerDefaults(t *testing.T) {
	log, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, log)
	// Unknown level falls back to info rather than failing.
	log2, err := NewLogger(Config{Level: "verbose"})
	require.NoError(t, err)
	require.NotNil(t, log2)
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	log, _ := newObserved(zapcore.InfoLevel)
	SetDefault(log)
	assert.Equal(t, log, Default())

	// nil is ignored, never replaces the default.
	SetDefault(nil)
	assert.Equal(t, log, Default())
}

func TestNopLoggerIsInert(t *testing.T) {
	nop := NewNopLogger()
	assert.NotPanics(t, func() {
		nop.Debug("a")
		nop.Info("b")
		nop.Warn("c")
		nop.Error("d")
		nop.With(String("k", "v")).Named("x").Info("e")
	})
}
