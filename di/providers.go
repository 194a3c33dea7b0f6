package di

import (
	"eventbook/config"
	"eventbook/infras/kafka"
	"eventbook/infras/otel"
	"eventbook/infras/postgres"
	"eventbook/shared/background"
	"eventbook/transport/http"
	"eventbook/transport/http/middleware"
	"eventbook/transport/http/router"

	goRedis "github.com/redis/go-redis/v9"
)

func provideRouter(handlers router.DomainHandlers, auth middleware.Auth) router.Router {
	return router.New(handlers, auth.AdminAuth)
}

func provideHTTP(
	cfg *config.Config,
	r router.Router,
	appMiddleware middleware.AppMiddleware,
	otl otel.Otel,
	db *postgres.Connection,
	redisClient *goRedis.Client,
	kafkaClient kafka.Client,
	tasks *background.Group,
) *http.HTTP {
	// Pending events and uploads drain before the clients they use are closed.
	return http.New(cfg, r, appMiddleware, otl, tasks, db, redisClient, kafkaClient)
}
