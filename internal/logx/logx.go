// Package logx is a small zap facade, grounded on the structured-logging
// conventions in xraph-go-utils/log: a narrow Logger interface over
// *zap.Logger so call sites never import zap directly.
package logx

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the facade every core package logs through.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	With(fields ...zap.Field) Logger
}

type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Debug(msg string, fields ...zap.Field) { l.z.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...zap.Field)  { l.z.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...zap.Field)  { l.z.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...zap.Field) { l.z.Error(msg, fields...) }
func (l *zapLogger) With(fields ...zap.Field) Logger {
	return &zapLogger{z: l.z.With(fields...)}
}

// noop discards everything; used when a caller hasn't wired a Logger.
type noop struct{}

func (noop) Debug(string, ...zap.Field)  {}
func (noop) Info(string, ...zap.Field)   {}
func (noop) Warn(string, ...zap.Field)   {}
func (noop) Error(string, ...zap.Field)  {}
func (n noop) With(...zap.Field) Logger  { return n }


// Noop is a Logger that discards every call. Packages default to it so the
// core never requires a logger to function.
var Noop Logger = noop{}

// NewDevelopment builds a human-readable, colorized-level logger for
// interactive use (the shell, cmd/wdprobe).
func NewDevelopment() Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewNop()
	}
	return &zapLogger{z: z}
}

// NewProduction builds a JSON logger suitable for a long-running shell
// process whose logs are collected rather than read on a terminal.
func NewProduction() Logger {
	z, err := zap.NewProductionConfig().Build(zap.AddCallerSkip(1))
	if err != nil {
		z = zap.NewNop()
	}
	return &zapLogger{z: z}
}

// FromEnv picks development or production encoding based on WD_ENV,
// the way the shell's config layer resolves environment-dependent
// defaults before koanf overrides apply.
func FromEnv() Logger {
	if os.Getenv("WD_ENV") == "production" {
		return NewProduction()
	}
	return NewDevelopment()
}
