package main

import (
	"context"

	"wehouse/config"
	"wehouse/di"
	"wehouse/helper"
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

	rooms, cleanup := di.InitializeRoomService()
	defer cleanup()

	created, err := helper.SeedRooms(context.Background(), rooms)
	if err != nil {
		log.Error().Err(err).Int("created", created).Msg("Seeding rooms failed")

		return
	}

	log.Info().Int("created", created).Msg("Seeding rooms completed")
}
