package dcmtree

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevel is shared by every logger created in this package
var logLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

var logger atomic.Pointer[zap.SugaredLogger]

func init() {
	logger.Store(NewConsoleLogger(os.Stderr))
}

func normaliseWriters(writers ...zapcore.WriteSyncer) zapcore.WriteSyncer {
	if len(writers) == 1 {
		return zapcore.Lock(writers[0])
	}
	return zapcore.Lock(zapcore.NewMultiWriteSyncer(writers...))
}

// isTerminal reports whether every writer is a terminal
func isTerminal(writers ...zapcore.WriteSyncer) bool {
	for _, w := range writers {
		f, ok := w.(*os.File)
		if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return false
		}
	}
	return len(writers) > 0
}

func encoderConfig(levelEncoder zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		EncodeLevel:    levelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// NewJSONLogger creates a `zap.SugaredLogger` configured for JSON output to `writers`
func NewJSONLogger(writers ...zapcore.WriteSyncer) *zap.SugaredLogger {
	enc := zapcore.NewJSONEncoder(encoderConfig(zapcore.LowercaseLevelEncoder))
	return zap.New(zapcore.NewCore(enc, normaliseWriters(writers...), logLevel)).Sugar()
}

// NewConsoleLogger creates a `zap.SugaredLogger` configured for human-readable output to `writers`.
// Levels are coloured when writing to a terminal.
func NewConsoleLogger(writers ...zapcore.WriteSyncer) *zap.SugaredLogger {
	levelEncoder := zapcore.LowercaseLevelEncoder
	if isTerminal(writers...) {
		levelEncoder = zapcore.LowercaseColorLevelEncoder
	}
	enc := zapcore.NewConsoleEncoder(encoderConfig(levelEncoder))
	return zap.New(zapcore.NewCore(enc, normaliseWriters(writers...), logLevel)).Sugar()
}

// Logger returns the package logger
func Logger() *zap.SugaredLogger {
	return logger.Load()
}

// SetLogger replaces the package logger
func SetLogger(l *zap.SugaredLogger) {
	logger.Store(l)
}

// SetLoggingLevel sets the level of every logger created by this package.
// Accepts "debug", "info", "warn", "error", "fatal", or "none".
func SetLoggingLevel(level string) error {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "none", "disabled", "off":
		logLevel.SetLevel(zapcore.FatalLevel + 1)
		return nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return errors.Wrapf(err, "invalid logging level %q", level)
	}
	logLevel.SetLevel(l)
	return nil
}

// Debugf logs at debug level. Arguments are handled in the manner of fmt.Printf
func Debugf(format string, v ...interface{}) {
	Logger().Debugf(format, v...)
}

// Infof logs at info level. Arguments are handled in the manner of fmt.Printf
func Infof(format string, v ...interface{}) {
	Logger().Infof(format, v...)
}

// Warnf logs at warn level. Arguments are handled in the manner of fmt.Printf
func Warnf(format string, v ...interface{}) {
	Logger().Warnf(format, v...)
}

// Errorf logs at error level. Arguments are handled in the manner of fmt.Printf
func Errorf(format string, v ...interface{}) {
	Logger().Errorf(format, v...)
}
