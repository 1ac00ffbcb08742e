package logging_test

import (
	"bytes"
	"testing"

	"taskboard/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	logger, err := logging.New("warn", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logging.New("loud", false)
	assert.Error(t, err)
}

func TestNewConsole_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewConsole(&buf, zapcore.DebugLevel)
	logger.Debug("toast", zap.String("kind", "success"))
	assert.Contains(t, buf.String(), "toast")
	assert.Contains(t, buf.String(), "success")
}
