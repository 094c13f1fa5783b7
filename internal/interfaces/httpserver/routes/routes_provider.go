package routes

import (
	"github.com/google/wire"

	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/adminhandler"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/chathandler"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/consenthandler"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/networkhandler"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/wisdomhandler"
	v1 "github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/admin"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/chat"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/consent"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/network"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/wisdom"
)

var RouteProvider = wire.NewSet(
	// Handlers
	chathandler.NewChatHandler,
	consenthandler.NewConsentHandler,
	wisdomhandler.NewWisdomHandler,
	networkhandler.NewNetworkHandler,
	adminhandler.NewAdminHandler,

	// Routes
	v1.NewV1Route,
	chat.NewChatRoute,
	consent.NewConsentRoute,
	wisdom.NewWisdomRoute,
	network.NewNetworkRoute,
	admin.NewAdminRoute,
)
