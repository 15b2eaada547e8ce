//go:build wireinject
// +build wireinject

package di

import (
	"parish/config"
	"parish/infras/jwt"
	"parish/infras/kafka"
	"parish/infras/otel"
	"parish/infras/postgres"
	"parish/infras/redis"
	"parish/infras/s3"
	"parish/permissions"
	"parish/shared/cache"
	"parish/transport/http"
	"parish/transport/http/middleware"
	"parish/transport/http/router"

	bookingEvent "parish/internal/domains/booking/event"
	bookingRepository "parish/internal/domains/booking/repository"
	bookingService "parish/internal/domains/booking/service"
	bookingHandler "parish/internal/handlers/booking"

	priestRepository "parish/internal/domains/priest/repository"
	priestService "parish/internal/domains/priest/service"
	priestHandler "parish/internal/handlers/priest"

	donationRepository "parish/internal/domains/donation/repository"
	donationService "parish/internal/domains/donation/service"
	donationHandler "parish/internal/handlers/donation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.NewBookingService,
)

var priestDomain = wire.NewSet(
	priestRepository.New,
	priestService.NewPriestService,
)

var donationDomain = wire.NewSet(
	donationRepository.New,
	donationService.NewDonationService,
)

var domains = wire.NewSet(
	priestDomain,
	bookingDomain,
	donationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	priestHandler.New,
	donationHandler.New,
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
