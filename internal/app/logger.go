// Package app provides logger initialization.
package app

import (
	"github.com/kyhorne/coload/config"
	"github.com/kyhorne/coload/internal/logger"
)

// InitializeLogger initializes the JSON logger from server configuration.
func InitializeLogger(cfg config.ServerConfig) {
	logger.Init(cfg.LogLevel, cfg.LogPretty)
}
