package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until InitLogger runs.
var Log = zap.NewNop()

// InitLogger builds Log from APP_ENV and LOG_LEVEL.
func InitLogger() *zap.Logger {
	level := zapcore.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
			level = zapcore.InfoLevel
		}
	}

	l, err := newLogger(level)
	if err != nil {
		// zap only fails here on a broken sink
		l = zap.NewExample()
	}
	Log = l
	return Log
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	var cfg zap.Config
	if IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// FacetLogger returns a debug-level logger for the facet engine when
// FACET_DEBUG is set, nil otherwise.
func FacetLogger() *zap.Logger {
	if !FacetDebug() {
		return nil
	}
	l, err := newLogger(zapcore.DebugLevel)
	if err != nil {
		return Log.Named("facets")
	}
	return l.Named("facets")
}

func IsProduction() bool {
	return os.Getenv("APP_ENV") == "production"
}

func FacetDebug() bool {
	switch strings.ToLower(os.Getenv("FACET_DEBUG")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
