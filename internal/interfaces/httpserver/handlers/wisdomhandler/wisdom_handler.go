package wisdomhandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/requests"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/responses"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
	"github.com/chaosweaver007/Genesis/internal/utils/ptr"
)

// WisdomHandler handles wisdom pattern and collective insight endpoints.
type WisdomHandler struct {
	archiveService *archive.Service
}

// NewWisdomHandler creates a new wisdom handler
func NewWisdomHandler(archiveService *archive.Service) *WisdomHandler {
	return &WisdomHandler{archiveService: archiveService}
}

// ListPatterns handles GET /v1/wisdom/patterns
// @Summary List wisdom patterns
// @Description Lists aggregated theme patterns ordered by frequency, then effectiveness.
// @Tags Wisdom API
// @Produce json
// @Param theme query string false "Filter by theme category"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} responses.WisdomPatternListResponse "Patterns"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/wisdom/patterns [get]
func (h *WisdomHandler) ListPatterns(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetPaginationFromQuery(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid pagination parameters")
		return
	}

	filter := archive.PatternFilter{}
	if theme := reqCtx.Query("theme"); theme != "" {
		filter.ThemeCategory = ptr.ToString(theme)
	}

	patterns, err := h.archiveService.WisdomPatterns(ctx, filter, pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list wisdom patterns")
		return
	}

	reqCtx.JSON(http.StatusOK, responses.WisdomPatternListResponse{Data: patterns})
}

// ListInsights handles GET /v1/wisdom/insights
// @Summary List collective insights
// @Description Lists synthesized insights ordered by confidence, then creation time.
// @Tags Wisdom API
// @Produce json
// @Param status query string false "Filter by review status" Enums(pending, approved)
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} responses.CollectiveInsightListResponse "Insights"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/wisdom/insights [get]
func (h *WisdomHandler) ListInsights(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	pagination, err := requests.GetPaginationFromQuery(reqCtx)
	if err != nil {
		responses.HandleError(reqCtx, err, "invalid pagination parameters")
		return
	}

	filter := archive.InsightFilter{}
	if statusStr := reqCtx.Query("status"); statusStr != "" {
		status := archive.ReviewStatus(statusStr)
		if status != archive.ReviewStatusPending && status != archive.ReviewStatusApproved {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
				"invalid review status", "6de358a9-c7e2-4968-a158-bb629fa23e2d")
			return
		}
		filter.ReviewStatus = &status
	}

	insights, err := h.archiveService.CollectiveInsights(ctx, filter, pagination)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list collective insights")
		return
	}

	reqCtx.JSON(http.StatusOK, responses.CollectiveInsightListResponse{Data: insights})
}

// ApproveInsight handles POST /v1/wisdom/insights/:insight_id/approve
// @Summary Approve a collective insight
// @Description Marks a pending insight as approved after ethical review. Approving twice is a no-op.
// @Tags Wisdom API
// @Produce json
// @Param insight_id path string true "Insight public ID"
// @Success 200 {object} archive.CollectiveInsight "Approved insight"
// @Failure 404 {object} responses.ErrorResponse "Insight not found"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/wisdom/insights/{insight_id}/approve [post]
func (h *WisdomHandler) ApproveInsight(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	insight, err := h.archiveService.ApproveInsight(ctx, reqCtx.Param("insight_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to approve collective insight")
		return
	}

	reqCtx.JSON(http.StatusOK, insight)
}
