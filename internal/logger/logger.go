// Package logger builds the structured logger shared by the server and CLI.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger in release mode and a console
// development logger otherwise. Unknown levels fall back to info.
func New(level string, release bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	config := zap.NewDevelopmentConfig()
	if release {
		config = zap.NewProductionConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	return config.Build()
}
