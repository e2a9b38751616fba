//go:build wireinject
// +build wireinject

package main

import (
	"hrms/config"
	"hrms/internal/command"
	"hrms/internal/cron"
	"hrms/internal/database"
	"hrms/internal/handler"
	"hrms/internal/middleware"
	"hrms/internal/router"
	"hrms/internal/service"
	"hrms/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			telemetry.ProviderSet,
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			telemetry.ProviderSet,
			database.ProviderSet,
			command.ProviderSet,
		),
	)
}
