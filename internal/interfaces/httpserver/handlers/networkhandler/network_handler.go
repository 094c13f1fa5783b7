package networkhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/responses"
)

// NetworkHandler serves archive-wide statistics.
type NetworkHandler struct {
	archiveService *archive.Service
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(archiveService *archive.Service) *NetworkHandler {
	return &NetworkHandler{archiveService: archiveService}
}

// GetStats handles GET /v1/network/stats
// @Summary Get network statistics
// @Description Returns archive-wide counts: conversations, consent breakdown, active sessions, patterns, insights, and top themes.
// @Tags Network API
// @Produce json
// @Success 200 {object} archive.NetworkStats "Current statistics"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/network/stats [get]
func (h *NetworkHandler) GetStats(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	stats, err := h.archiveService.NetworkStats(ctx)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to assemble network statistics")
		return
	}

	reqCtx.JSON(http.StatusOK, stats)
}
