package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("production", "warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = New("development", "debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("development", "loud")
	assert.Error(t, err)
}

func TestWithService(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	WithService(zap.New(core), "svc", "1.2.3").Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "svc", fields["service"])
	assert.Equal(t, "1.2.3", fields["version"])
}
