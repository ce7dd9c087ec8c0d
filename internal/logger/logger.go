package logger

import (
	"context"

	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger to provide logging functionality
type Logger struct {
	*zap.SugaredLogger
}

// Global logger for convenience
var L *Logger

// NewLogger creates and returns a new Logger instance at the configured level
func NewLogger(cfg *config.Configuration) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.Level = zap.NewAtomicLevelAt(levelFor(cfg))

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		SugaredLogger: zapLogger.Sugar(),
	}, nil
}

// NewNopLogger returns a logger that discards everything, for tests.
func NewNopLogger() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func levelFor(cfg *config.Configuration) zapcore.Level {
	if cfg != nil && cfg.Logging.Level == types.LogLevelDebug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Initialize default logger and set it as global while also using Dependency Injection
// Given logger is a heavily used object and is used in many places so it's a good idea to
// have it as a global variable as well for usecases like scripts but for everywhere else
// we should try to use the Dependency Injection approach only.
func init() {
	L, _ = NewLogger(config.GetDefaultConfig())
}

// WithContext returns a logger tagged with the request id carried by ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if requestID := types.GetRequestID(ctx); requestID != "" {
		return &Logger{SugaredLogger: l.SugaredLogger.With("request_id", requestID)}
	}
	return l
}
