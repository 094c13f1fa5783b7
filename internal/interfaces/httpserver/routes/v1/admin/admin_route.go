package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/adminhandler"
)

// AdminRoute handles routing for operator maintenance endpoints
type AdminRoute struct {
	handler *adminhandler.AdminHandler
}

// NewAdminRoute creates a new admin route handler
func NewAdminRoute(handler *adminhandler.AdminHandler) *AdminRoute {
	return &AdminRoute{handler: handler}
}

// RegisterRouter registers admin routes under /admin prefix
func (route *AdminRoute) RegisterRouter(router gin.IRouter) {
	maintenanceRouter := router.Group("/admin/maintenance")

	// POST /v1/admin/maintenance/retention-sweep - delete expired records
	maintenanceRouter.POST("/retention-sweep", route.handler.RunRetentionSweep)

	// POST /v1/admin/maintenance/synthesize-insights - re-run insight synthesis
	maintenanceRouter.POST("/synthesize-insights", route.handler.SynthesizeInsights)
}
