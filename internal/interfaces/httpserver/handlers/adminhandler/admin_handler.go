package adminhandler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/database/transaction"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/metrics"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/responses"
)

// AdminHandler handles operator maintenance endpoints.
type AdminHandler struct {
	archiveService *archive.Service
	db             *transaction.Database
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(archiveService *archive.Service, db *transaction.Database) *AdminHandler {
	return &AdminHandler{
		archiveService: archiveService,
		db:             db,
	}
}

// RunRetentionSweep handles POST /v1/admin/maintenance/retention-sweep
// @Summary Run a retention sweep
// @Description Deletes conversation records older than their session's retention window. The whole sweep runs in one transaction.
// @Tags Admin API
// @Produce json
// @Success 200 {object} responses.RetentionSweepResponse "Sweep result"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/admin/maintenance/retention-sweep [post]
func (h *AdminHandler) RunRetentionSweep(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	now := time.Now().UTC()

	var deleted int64
	err := h.db.Execute(ctx, func(txCtx context.Context) error {
		var sweepErr error
		deleted, sweepErr = h.archiveService.SweepExpired(txCtx, now)
		return sweepErr
	})
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to run retention sweep")
		return
	}

	metrics.RecordSweepDeleted(deleted)
	reqCtx.JSON(http.StatusOK, responses.RetentionSweepResponse{
		Deleted: deleted,
		SweptAt: now.Format(time.RFC3339),
	})
}

// SynthesizeInsights handles POST /v1/admin/maintenance/synthesize-insights
// @Summary Re-run insight synthesis
// @Description Scans high-value wisdom patterns and creates pending insights for themes that have none yet.
// @Tags Admin API
// @Produce json
// @Success 200 {object} map[string]int "Number of insights created"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/admin/maintenance/synthesize-insights [post]
func (h *AdminHandler) SynthesizeInsights(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	created, err := h.archiveService.SynthesizeInsights(ctx)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to synthesize insights")
		return
	}

	metrics.RecordInsightsSynthesized(created)
	reqCtx.JSON(http.StatusOK, gin.H{"created": created})
}
