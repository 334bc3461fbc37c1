// Package logger wraps zap for the service. A Logger starts as a no-op and
// becomes a production JSON logger once Init is called with a level.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	Log *zap.Logger
}

func New() *Logger {
	return &Logger{
		Log: zap.NewNop(),
	}
}

// Init replaces the no-op logger with a production logger at level,
// writing to stderr and, when given, the extra outputPaths.
func (l *Logger) Init(level string, outputPaths ...string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = append([]string{"stderr"}, outputPaths...)

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = zl.Named("submitter")
	return nil
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Log.Sugar().Infow(msg, keysAndValues...)
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func (l *Logger) Sync() {
	_ = l.Log.Sync()
}
