package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the zap logger with additional functionality.
type Logger struct {
	*zap.Logger
}

// NewLogger creates a new logger instance with production configuration.
// All output goes to stderr: stdout is reserved for the report itself.
// Warnings and above are emitted by default.
func NewLogger() (*Logger, error) {
	return newLogger(zapcore.WarnLevel)
}

// NewVerboseLogger creates a logger that also emits info-level diagnostics,
// used when the CLI runs with --verbose.
func NewVerboseLogger() (*Logger, error) {
	return newLogger(zapcore.InfoLevel)
}

func newLogger(level zapcore.Level) (*Logger, error) {
	config := zap.NewProductionConfig()

	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}

	return nil
}
