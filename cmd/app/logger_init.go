package main

import (
	"github.com/TavstalDev/MineCoreLib/internal/config"
	"github.com/TavstalDev/MineCoreLib/internal/handler"
	"github.com/TavstalDev/MineCoreLib/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		handler.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
