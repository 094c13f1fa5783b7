package consent

import (
	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/consenthandler"
)

// ConsentRoute handles routing for consent preference endpoints
type ConsentRoute struct {
	handler *consenthandler.ConsentHandler
}

// NewConsentRoute creates a new consent route handler
func NewConsentRoute(handler *consenthandler.ConsentHandler) *ConsentRoute {
	return &ConsentRoute{handler: handler}
}

// RegisterRouter registers consent routes under /consent prefix
func (route *ConsentRoute) RegisterRouter(router gin.IRouter) {
	consentRouter := router.Group("/consent")

	// PUT /v1/consent - store a session's preference
	consentRouter.PUT("", route.handler.UpdateConsent)

	// GET /v1/consent/:session_id - read a session's preference
	consentRouter.GET("/:session_id", route.handler.GetConsent)
}
