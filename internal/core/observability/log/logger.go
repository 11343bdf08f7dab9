package log

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zeusync/corgecs/internal/config"
)

var innerLogger atomic.Pointer[zap.Logger]

// New builds a zap logger from the logging section of the configuration.
// The first logger built becomes the one returned by Default.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoding := strings.ToLower(cfg.Format)
	encoderConfig := zap.NewProductionEncoderConfig()
	switch encoding {
	case "", "json":
		encoding = "json"
	case "console":
		encoderConfig = zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	innerLogger.CompareAndSwap(nil, logger)
	return logger, nil
}

// Provide builds the logger for the injector.
func Provide(cfg *config.Config) (*zap.Logger, error) {
	return New(cfg.Logging)
}

// Default returns the first logger built by New, or a no-op logger.
func Default() *zap.Logger {
	if l := innerLogger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// ParseLevel converts a level name into a zap level. An empty name means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel, nil
	case "", "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	case "fatal":
		return zap.FatalLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
