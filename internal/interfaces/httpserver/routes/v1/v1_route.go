package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/config"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/admin"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/chat"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/consent"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/network"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/routes/v1/wisdom"
)

type V1Route struct {
	chat    *chat.ChatRoute
	consent *consent.ConsentRoute
	wisdom  *wisdom.WisdomRoute
	network *network.NetworkRoute
	admin   *admin.AdminRoute
}

func NewV1Route(
	chat *chat.ChatRoute,
	consent *consent.ConsentRoute,
	wisdom *wisdom.WisdomRoute,
	network *network.NetworkRoute,
	admin *admin.AdminRoute,
) *V1Route {
	return &V1Route{
		chat,
		consent,
		wisdom,
		network,
		admin,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Router.GET("/version", GetVersion)
	v1Router.GET("/healthz", GetHealthz)
	v1Router.GET("/readyz", GetReadyz)

	v1Route.chat.RegisterRouter(v1Router)
	v1Route.consent.RegisterRouter(v1Router)
	v1Route.wisdom.RegisterRouter(v1Router)
	v1Route.network.RegisterRouter(v1Router)
	v1Route.admin.RegisterRouter(v1Router)
}

// GetVersion godoc
// @Summary Get API build version
// @Description Returns the current build version of the API server and environment reload timestamp.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Version information including version number and environment reload timestamp"
// @Router /v1/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":         config.Version,
		"env_reloaded_at": config.GetEnvReloadedAt().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// GetHealthz godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API server. Used by orchestrators and monitoring systems.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Health status OK"
// @Router /v1/healthz [get]
func GetHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadyz godoc
// @Summary Readiness check endpoint
// @Description Returns the readiness status of the API server. Indicates if the service is ready to accept traffic.
// @Tags Server API
// @Produce json
// @Success 200 {object} map[string]string "Readiness status ready"
// @Router /v1/readyz [get]
func GetReadyz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
