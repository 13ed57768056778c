package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"DEBUG":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"WARNING": zapcore.WarnLevel,
		"warn":    zapcore.WarnLevel,
		"ERROR":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"chatty":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_SetsAtomicLevel(t *testing.T) {
	log, err := New("WARNING", "dev")
	require.NoError(t, err)
	defer log.Closer()

	assert.Equal(t, zapcore.WarnLevel, log.Level.Level())
	assert.False(t, log.Base.Core().Enabled(zapcore.InfoLevel))

	log.Level.SetLevel(zapcore.DebugLevel)
	assert.True(t, log.Base.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_Production(t *testing.T) {
	log, err := New("error", "PROD")
	require.NoError(t, err)
	defer log.Closer()
	assert.Equal(t, zapcore.ErrorLevel, log.Level.Level())
}
