// Package logging builds the zap logger shared by the frame drivers.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/hunters/config"
)

// New builds a logger from cfg. Every entry carries a "run" field so that
// output from several runs can be told apart.
func New(cfg config.Logging) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging level: %w", err)
	}

	var encoderConfig zapcore.EncoderConfig
	switch cfg.Format {
	case "", "json":
		cfg.Format = "json"
		encoderConfig = zap.NewProductionEncoderConfig()
	case "console":
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("logging format %q is not one of json, console", cfg.Format)
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		Encoding:          cfg.Format,
		EncoderConfig:     encoderConfig,
		OutputPaths:       []string{output},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.With(zap.String("run", uuid.NewString())), nil
}
