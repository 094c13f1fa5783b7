//go:build wireinject

package main

import (
	"github.com/chaosweaver007/Genesis/internal/domain"
	"github.com/chaosweaver007/Genesis/internal/infrastructure"
	"github.com/chaosweaver007/Genesis/internal/interfaces"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
