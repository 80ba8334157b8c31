// Package logger provides structured logging with zap.
package logger

import "go.uber.org/zap"

// New creates a new zap.Logger depending on the environment. The CLI keeps
// its stdout clean, so logs go to stderr in both modes.
func New(env string) *zap.Logger {
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		logger, _ := cfg.Build()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}
