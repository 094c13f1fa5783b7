package network

import (
	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/networkhandler"
)

// NetworkRoute handles routing for network statistics endpoints
type NetworkRoute struct {
	handler *networkhandler.NetworkHandler
}

// NewNetworkRoute creates a new network route handler
func NewNetworkRoute(handler *networkhandler.NetworkHandler) *NetworkRoute {
	return &NetworkRoute{handler: handler}
}

// RegisterRouter registers network routes under /network prefix
func (route *NetworkRoute) RegisterRouter(router gin.IRouter) {
	networkRouter := router.Group("/network")

	// GET /v1/network/stats - archive-wide aggregate
	networkRouter.GET("/stats", route.handler.GetStats)
}
