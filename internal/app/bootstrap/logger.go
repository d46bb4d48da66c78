package bootstrap

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger: JSON output in production,
// human-readable console output otherwise.
func NewLogger(cfg Config) (*zap.Logger, error) {
	if cfg.IsProd() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
