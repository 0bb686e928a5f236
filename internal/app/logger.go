// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/logger"
)

// InitializeLogger sets the global zerolog level and output format.
func InitializeLogger(cfg config.LoggingConfig) {
	logger.Setup(nil, cfg.Level, cfg.Pretty)
}
