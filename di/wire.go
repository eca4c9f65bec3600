//go:build wireinject
// +build wireinject

package di

import (
	"praxis/config"
	"praxis/infras/jwt"
	"praxis/infras/mailer"
	"praxis/infras/otel"
	"praxis/infras/postgres"
	"praxis/infras/redis"
	"praxis/infras/s3"
	"praxis/permissions"
	"praxis/shared/cache"
	"praxis/transport/http"
	"praxis/transport/http/middleware"
	"praxis/transport/http/router"

	appointmentRepository "praxis/internal/domains/appointment/repository"
	appointmentService "praxis/internal/domains/appointment/service"
	notificationRepository "praxis/internal/domains/notification/repository"
	notificationService "praxis/internal/domains/notification/service"
	offeringRepository "praxis/internal/domains/offering/repository"
	offeringService "praxis/internal/domains/offering/service"
	postRepository "praxis/internal/domains/post/repository"
	postService "praxis/internal/domains/post/service"
	settingsRepository "praxis/internal/domains/settings/repository"
	settingsService "praxis/internal/domains/settings/service"

	appointmentHandler "praxis/internal/handlers/appointment"
	healthHandler "praxis/internal/handlers/health"
	notificationHandler "praxis/internal/handlers/notification"
	offeringHandler "praxis/internal/handlers/offering"
	postHandler "praxis/internal/handlers/post"
	settingsHandler "praxis/internal/handlers/settings"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
	wire.Bind(new(appointmentService.ScheduleSource), new(settingsService.Settings)),
)

var postDomain = wire.NewSet(
	postRepository.New,
	postService.New,
)

var offeringDomain = wire.NewSet(
	offeringRepository.New,
	offeringService.New,
)

var domains = wire.NewSet(
	appointmentDomain,
	notificationDomain,
	settingsDomain,
	postDomain,
	offeringDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	appointmentHandler.New,
	postHandler.New,
	offeringHandler.New,
	settingsHandler.New,
	notificationHandler.New,
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
