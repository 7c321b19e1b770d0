package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the logging interface consumed throughout the module. The registry
// emits one informational event per successful declare/override through it.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
	Named(name string) Logger
	Sync() error
}

// LogLevel names a logging level.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// LoggingConfig configures a logger.
type LoggingConfig struct {
	Level       LogLevel
	Format      string // "json" or "console"
	Environment string // "production" enables the JSON production config
}

// logger implements the Logger interface using zap.
type logger struct {
	zap *zap.Logger
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(config LoggingConfig) Logger {
	logLevel := zapcore.InfoLevel
	switch strings.ToLower(string(config.Level)) {
	case "debug":
		logLevel = zapcore.DebugLevel
	case "info":
		logLevel = zapcore.InfoLevel
	case "warn", "warning":
		logLevel = zapcore.WarnLevel
	case "error":
		logLevel = zapcore.ErrorLevel
	}

	var zapLogger *zap.Logger
	if config.Environment == "production" || config.Format == "json" {
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(logLevel)
		zapLogger, _ = zapConfig.Build(zap.AddCallerSkip(1))
	} else {
		zapConfig := zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(logLevel)
		zapLogger, _ = zapConfig.Build(zap.AddCallerSkip(1))
	}

	return &logger{zap: zapLogger}
}

// NewDevelopmentLogger creates a console logger at debug level.
func NewDevelopmentLogger() Logger {
	return NewLogger(LoggingConfig{Level: LevelDebug})
}

// NewProductionLogger creates a JSON logger at info level.
func NewProductionLogger() Logger {
	return NewLogger(LoggingConfig{Level: LevelInfo, Environment: "production"})
}

// NewTestLogger creates a logger that writes through the test's log output.
func NewTestLogger(t zaptest.TestingT) Logger {
	return &logger{zap: zaptest.NewLogger(t)}
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) Logger {
	return &logger{zap: z}
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.zap.Debug(msg, fieldsToZap(fields)...)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.zap.Info(msg, fieldsToZap(fields)...)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.zap.Warn(msg, fieldsToZap(fields)...)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.zap.Error(msg, fieldsToZap(fields)...)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{zap: l.zap.With(fieldsToZap(fields)...)}
}

func (l *logger) Named(name string) Logger {
	return &logger{zap: l.zap.Named(name)}
}

func (l *logger) Sync() error {
	return l.zap.Sync()
}

// noopLogger implements Logger but does nothing.
type noopLogger struct{}

// NewNoopLogger creates a logger that discards everything.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (n *noopLogger) Debug(msg string, fields ...Field) {}
func (n *noopLogger) Info(msg string, fields ...Field)  {}
func (n *noopLogger) Warn(msg string, fields ...Field)  {}
func (n *noopLogger) Error(msg string, fields ...Field) {}
func (n *noopLogger) With(fields ...Field) Logger       { return n }
func (n *noopLogger) Named(name string) Logger          { return n }
func (n *noopLogger) Sync() error                       { return nil }

func fieldsToZap(fields []Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, field := range fields {
		zapFields[i] = field.ZapField()
	}
	return zapFields
}
