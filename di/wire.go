//go:build wireinject
// +build wireinject

package di

import (
	"eventbook/config"
	"eventbook/infras/kafka"
	"eventbook/infras/otel"
	"eventbook/infras/postgres"
	"eventbook/infras/redis"
	"eventbook/infras/s3"
	"eventbook/shared/background"
	"eventbook/shared/cache"
	"eventbook/transport/http"
	"eventbook/transport/http/middleware"
	"eventbook/transport/http/router"
	"eventbook/transport/http/view"

	"github.com/google/wire"

	adminService "eventbook/internal/domains/admin/service"
	availabilityService "eventbook/internal/domains/availability/service"
	bookingEvent "eventbook/internal/domains/booking/event"
	bookingRepository "eventbook/internal/domains/booking/repository"
	bookingService "eventbook/internal/domains/booking/service"
	adminHandler "eventbook/internal/handlers/admin"
	availabilityHandler "eventbook/internal/handlers/availability"
	bookingHandler "eventbook/internal/handlers/booking"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	view.New,
	background.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	bookingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	availabilityService.New,
	adminService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	bookingHandler.New,
	adminHandler.New,
	provideRouter,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		provideHTTP,
	)

	return &http.HTTP{}
}
