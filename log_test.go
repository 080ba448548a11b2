package dcmtree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLoggingLevel(t *testing.T) {
	defer func() { require.NoError(t, SetLoggingLevel("info")) }()
	for _, level := range []string{"debug", "INFO", " warn ", "error", "none"} {
		assert.NoError(t, SetLoggingLevel(level), level)
	}
	assert.False(t, logLevel.Enabled(zapcore.FatalLevel))
	assert.Error(t, SetLoggingLevel("verbose"))
}

func TestJSONLogger(t *testing.T) {
	defer func() { require.NoError(t, SetLoggingLevel("info")) }()
	require.NoError(t, SetLoggingLevel("warn"))
	var buf bytes.Buffer
	l := NewJSONLogger(zapcore.AddSync(&buf))
	l.Infow("dropped")
	l.Warnw("unrecognised transfer syntax", "uid", "1.2.3.4")
	require.NoError(t, l.Sync())
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"uid":"1.2.3.4"`)
}

func TestConsoleLoggerWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, isTerminal(zapcore.AddSync(&buf)))
	l := NewConsoleLogger(zapcore.AddSync(&buf))
	l.Infof("decoded %d elements", 3)
	assert.Contains(t, buf.String(), "info\tdecoded 3 elements")
}
