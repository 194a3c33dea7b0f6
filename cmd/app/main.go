package main

import (
	"eventbook/config"
	"eventbook/di"
	"eventbook/helper"
	"eventbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Event Booking API
// @version 1.0
// @description Date availability, booking and admin management for a single-venue event calendar.
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
