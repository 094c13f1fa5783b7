package interfaces

import (
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver"

	"github.com/google/wire"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)
