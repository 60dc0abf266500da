package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/popeskul/tg-forwarder/internal/config"
)

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Mode == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid logger.level: %w", err)
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}

func persistLevel(cfg config.LoggerConfig) zapcore.Level {
	level, err := zapcore.ParseLevel(cfg.PersistMin)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
