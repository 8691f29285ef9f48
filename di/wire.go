//go:build wireinject
// +build wireinject

package di

import (
	"nirvanica/config"
	"nirvanica/infras/kafka"
	"nirvanica/infras/otel"
	"nirvanica/infras/postgres"
	"nirvanica/infras/redis"
	"nirvanica/infras/s3"
	"nirvanica/shared/cache"
	"nirvanica/transport/http"
	"nirvanica/transport/http/middleware"
	"nirvanica/transport/http/router"

	"nirvanica/internal/domains/booking/notifier"
	"nirvanica/internal/domains/booking/reference"
	bookingService "nirvanica/internal/domains/booking/service"
	"nirvanica/internal/domains/booking/store"
	reservationService "nirvanica/internal/domains/reservation/service"
	"nirvanica/internal/domains/room/catalog"

	bookingHandler "nirvanica/internal/handlers/booking"
	reservationHandler "nirvanica/internal/handlers/reservation"
	roomHandler "nirvanica/internal/handlers/room"

	"github.com/google/wire"
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
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	catalog.New,
)

var bookingDomain = wire.NewSet(
	store.New,
	notifier.New,
	reference.New,
	bookingService.New,
)

var reservationDomain = wire.NewSet(
	reservationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	reservationHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
