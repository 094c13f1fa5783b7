package wisdom

import (
	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/wisdomhandler"
)

// WisdomRoute handles routing for wisdom pattern and insight endpoints
type WisdomRoute struct {
	handler *wisdomhandler.WisdomHandler
}

// NewWisdomRoute creates a new wisdom route handler
func NewWisdomRoute(handler *wisdomhandler.WisdomHandler) *WisdomRoute {
	return &WisdomRoute{handler: handler}
}

// RegisterRouter registers wisdom routes under /wisdom prefix
func (route *WisdomRoute) RegisterRouter(router gin.IRouter) {
	wisdomRouter := router.Group("/wisdom")

	// GET /v1/wisdom/patterns - aggregated theme patterns
	wisdomRouter.GET("/patterns", route.handler.ListPatterns)

	// GET /v1/wisdom/insights - synthesized collective insights
	wisdomRouter.GET("/insights", route.handler.ListInsights)

	// POST /v1/wisdom/insights/:insight_id/approve - ethical review approval
	wisdomRouter.POST("/insights/:insight_id/approve", route.handler.ApproveInsight)
}
