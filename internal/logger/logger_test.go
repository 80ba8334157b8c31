package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Development(t *testing.T) {
	log := New("development")
	assert.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel), "development logger should allow debug level")
}

func TestNewLogger_Production(t *testing.T) {
	log := New("production")
	assert.NotNil(t, log)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "production logger should not allow debug level")
}
