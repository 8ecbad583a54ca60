//go:build wireinject
// +build wireinject

package di

import (
	"wehouse/config"
	"wehouse/shared/cache"
	"wehouse/transport/http"
	"wehouse/transport/http/middleware"
	"wehouse/transport/http/router"

	bannedCustomerRepository "wehouse/internal/domains/bannedcustomer/repository"
	bannedCustomerService "wehouse/internal/domains/bannedcustomer/service"
	roomRepository "wehouse/internal/domains/room/repository"
	roomService "wehouse/internal/domains/room/service"

	bannedCustomerHandler "wehouse/internal/handlers/bannedcustomer"
	roomHandler "wehouse/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	provideOtel,
	provideRedis,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bannedCustomerDomain = wire.NewSet(
	bannedCustomerRepository.New,
	bannedCustomerService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bannedCustomerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	provideHealthHandler,
	roomHandler.New,
	bannedCustomerHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil
}

// InitializeRoomService wires the room service alone, for the seed command.
func InitializeRoomService() (roomService.Room, func()) {
	wire.Build(
		configurations,
		providePostgres,
		provideOtel,
		roomDomain,
	)

	return nil, nil
}
