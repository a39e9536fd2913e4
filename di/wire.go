//go:build wireinject
// +build wireinject

package di

import (
	"minihotel/config"
	"minihotel/infras/jwt"
	"minihotel/infras/kafka"
	"minihotel/infras/otel"
	"minihotel/infras/postgres"
	"minihotel/infras/redis"
	"minihotel/infras/s3"
	"minihotel/internal/events"
	"minihotel/permissions"
	"minihotel/shared/cache"
	"minihotel/transport/http"
	"minihotel/transport/http/middleware"
	"minihotel/transport/http/router"

	authService "minihotel/internal/domains/auth/service"
	bookingRepository "minihotel/internal/domains/booking/repository"
	bookingService "minihotel/internal/domains/booking/service"
	customerRepository "minihotel/internal/domains/customer/repository"
	customerService "minihotel/internal/domains/customer/service"
	photoRepository "minihotel/internal/domains/photo/repository"
	photoService "minihotel/internal/domains/photo/service"
	roomRepository "minihotel/internal/domains/room/repository"
	roomService "minihotel/internal/domains/room/service"
	roomTypeRepository "minihotel/internal/domains/roomtype/repository"
	roomTypeService "minihotel/internal/domains/roomtype/service"

	authHandler "minihotel/internal/handlers/auth"
	bookingHandler "minihotel/internal/handlers/booking"
	customerHandler "minihotel/internal/handlers/customer"
	photoHandler "minihotel/internal/handlers/photo"
	roomHandler "minihotel/internal/handlers/room"
	roomTypeHandler "minihotel/internal/handlers/roomtype"

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
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventPublishers = wire.NewSet(
	events.NewBookingPublisher,
)

var authDomain = wire.NewSet(
	authService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var photoDomain = wire.NewSet(
	photoRepository.New,
	photoService.New,
)

var domains = wire.NewSet(
	authDomain,
	roomTypeDomain,
	roomDomain,
	customerDomain,
	bookingDomain,
	photoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	customerHandler.New,
	bookingHandler.New,
	photoHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventPublishers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
