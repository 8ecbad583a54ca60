package main

import (
	"wehouse/config"
	"wehouse/di"
	"wehouse/helper"
	"wehouse/infras/metrics"
	"wehouse/shared/logger"
	"wehouse/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Str("timezone", cfg.App.Timezone).Msg("Unknown timezone, keeping UTC")
	}

	if cfg.Metrics.Enable {
		metrics.Register()
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http, cleanup := di.InitializeService()
	defer cleanup()

	http.Serve()
}
