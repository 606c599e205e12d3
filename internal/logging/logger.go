package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger = zap.NewNop().Sugar()

// Init builds the global logger. "production" selects zap's production
// preset; anything else the development one. Both write JSON.
func Init(env string) error {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

// SetLogger replaces the global logger, mainly for tests.
func SetLogger(l *zap.SugaredLogger) {
	globalLogger = l
}

func GetLogger() *zap.SugaredLogger {
	return globalLogger
}

// Close flushes buffered entries.
func Close() error {
	return globalLogger.Sync()
}

func Info(message string, fields ...interface{}) {
	globalLogger.Infow(message, fields...)
}

func Debug(message string, fields ...interface{}) {
	globalLogger.Debugw(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	globalLogger.Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	globalLogger.Errorw(message, fields...)
}

func Fatal(message string, fields ...interface{}) {
	globalLogger.Fatalw(message, fields...)
}

// WithRequest returns a logger carrying request-scoped fields.
func WithRequest(requestID, method, endpoint string) *zap.SugaredLogger {
	return globalLogger.With(
		"request_id", requestID,
		"method", method,
		"endpoint", endpoint,
	)
}
