package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "carrier-sales"

var globalLogger *zap.Logger

// Init builds the process-wide logger for the given environment.
// "production" writes unsampled JSON with ISO8601 timestamps; anything else
// writes colored console lines. An unknown level keeps the environment default
// and is reported once the logger exists.
func Init(environment string, level string) error {
	config := newConfig(environment)

	lvl, levelErr := zapcore.ParseLevel(level)
	if levelErr == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := config.Build(zap.Fields(
		zap.String("service", serviceName),
		zap.String("env", environment),
	))
	if err != nil {
		return err
	}

	globalLogger = l
	if levelErr != nil {
		l.Warn("Unknown log level, keeping default",
			zap.String("requested", level),
			zap.Stringer("level", config.Level.Level()),
		)
	}
	return nil
}

func newConfig(environment string) zap.Config {
	if environment == "production" {
		config := zap.NewProductionConfig()
		config.Sampling = nil
		config.EncoderConfig.TimeKey = "ts"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		return config
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config
}

// Get returns the global logger instance, or a no-op logger before Init.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Named returns a child logger for one component, e.g. "fmcsa" or "geocoder".
func Named(component string) *zap.Logger {
	return Get().Named(component)
}

// WithRayID returns the global logger tagged with the request's ray ID.
func WithRayID(rayID string) *zap.Logger {
	return Get().With(zap.String("ray_id", rayID))
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
