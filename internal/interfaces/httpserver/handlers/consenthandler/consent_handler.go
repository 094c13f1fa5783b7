package consenthandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	consentrequests "github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/requests/consent"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/responses"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// ConsentHandler handles consent preference endpoints.
type ConsentHandler struct {
	consentService *consent.Service
	validate       *validator.Validate
}

// NewConsentHandler creates a new consent handler
func NewConsentHandler(consentService *consent.Service) *ConsentHandler {
	return &ConsentHandler{
		consentService: consentService,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// UpdateConsent handles PUT /v1/consent
// @Summary Store a session's consent preference
// @Description Creates or replaces the consent preference for a session. Non-positive retention days fall back to the default.
// @Tags Consent API
// @Accept json
// @Produce json
// @Param request body consentrequests.UpdateConsentRequest true "Consent preference"
// @Success 200 {object} responses.ConsentPreferenceResponse "Stored preference"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/consent [put]
func (h *ConsentHandler) UpdateConsent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req consentrequests.UpdateConsentRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid request body", "8a863c56-8b24-47f8-96d5-e5b2c96cde09")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"request validation failed", "c219f468-f809-43fc-ae52-fff478234c8e")
		return
	}

	preference, err := h.consentService.Set(ctx, req.ToPreference())
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to store consent preference")
		return
	}

	reqCtx.JSON(http.StatusOK, responses.NewConsentPreferenceResponse(preference))
}

// GetConsent handles GET /v1/consent/:session_id
// @Summary Get a session's consent preference
// @Description Returns the stored consent preference for a session.
// @Tags Consent API
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} responses.ConsentPreferenceResponse "Stored preference"
// @Failure 404 {object} responses.ErrorResponse "No preference stored"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/consent/{session_id} [get]
func (h *ConsentHandler) GetConsent(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	preference, err := h.consentService.Get(ctx, reqCtx.Param("session_id"))
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to load consent preference")
		return
	}

	reqCtx.JSON(http.StatusOK, responses.NewConsentPreferenceResponse(preference))
}
