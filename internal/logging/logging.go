// Package logging builds the zap logger used by the CLI and adapts it to
// the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// NewLogger creates a zap logger from the logging configuration, with an
// optional level override taking precedence.
func NewLogger(cfg domain.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := cfg.Format
	if format == "" {
		format = "console"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if cfg.OutputFile != "" {
		if dir := filepath.Dir(cfg.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zapConfig.OutputPaths = []string{cfg.OutputFile}
		zapConfig.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zapConfig.Build()
}

// EngineLogger adapts a zap logger to the calculation.Logger interface.
type EngineLogger struct {
	s *zap.SugaredLogger
}

// NewEngineLogger wraps a zap logger for use by the calculation engine.
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	return &EngineLogger{s: l.Sugar()}
}

func (el *EngineLogger) Debugf(format string, args ...any) { el.s.Debugf(format, args...) }
func (el *EngineLogger) Infof(format string, args ...any)  { el.s.Infof(format, args...) }
func (el *EngineLogger) Warnf(format string, args ...any)  { el.s.Warnf(format, args...) }
func (el *EngineLogger) Errorf(format string, args ...any) { el.s.Errorf(format, args...) }
