package di

import (
	"context"
	"time"

	"wehouse/config"
	"wehouse/infras/otel"
	"wehouse/infras/postgres"
	"wehouse/infras/redis"
	"wehouse/internal/handlers/health"
	"wehouse/shared/cache"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const otelShutdownTimeout = 5 * time.Second

func providePostgres(cfg *config.Config) (*postgres.Connection, func()) {
	conn := postgres.New(cfg)

	return conn, func() {
		if err := conn.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close postgres connections")
		}
	}
}

func provideRedis(cfg *config.Config) (*goRedis.Client, func()) {
	client := redis.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close redis client")
		}
	}
}

func provideOtel(cfg *config.Config) (otel.Otel, func()) {
	provider := otel.New(cfg)

	return provider, func() {
		ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := provider.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to flush traces")
		}
	}
}

func provideHealthHandler(db *postgres.Connection, redisCache cache.RedisCache, ot otel.Otel) health.Handler {
	return health.New(db, redisCache, ot)
}
