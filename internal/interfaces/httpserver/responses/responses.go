package responses

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/consent"
	"github.com/chaosweaver007/Genesis/internal/domain/persona"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// ErrorResponse represents an error response with platform error details
type ErrorResponse struct {
	Code          string `json:"code"` // UUID from PlatformError
	Error         string `json:"error"`
	Message       string `json:"message,omitempty"`
	ErrorInstance error  `json:"-"`
	RequestID     string `json:"request_id,omitempty"`
}

// HandleError handles domain errors and returns appropriate HTTP responses
func HandleError(reqCtx *gin.Context, err error, message string) {
	var domainErr *platformerrors.PlatformError
	if errors.As(err, &domainErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(domainErr.GetErrorType())

		errResp := ErrorResponse{
			Code:          domainErr.GetUUID(),
			Error:         message,
			Message:       message,
			ErrorInstance: domainErr,
			RequestID:     domainErr.GetRequestID(),
		}

		reqCtx.AbortWithStatusJSON(statusCode, errResp)
		return
	}
	// Non-platform errors
	errResp := ErrorResponse{
		Error:         message,
		Message:       message,
		ErrorInstance: err,
	}
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, errResp)
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	ctx := reqCtx.Request.Context()
	err := platformerrors.NewError(ctx, platformerrors.LayerRoute, errorType, message, nil, uuid)

	statusCode := platformerrors.ErrorTypeToHTTPStatus(err.GetErrorType())

	errResp := ErrorResponse{
		Code:          err.GetUUID(),
		Error:         message,
		Message:       message,
		ErrorInstance: err,
		RequestID:     err.GetRequestID(),
	}

	reqCtx.AbortWithStatusJSON(statusCode, errResp)
}

// ChatReplyResponse is returned by the chat endpoints.
type ChatReplyResponse struct {
	Response  string `json:"response"`
	Persona   string `json:"persona"`
	Mode      string `json:"mode"`
	Emoji     string `json:"emoji,omitempty"`
	RecordID  string `json:"record_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// NewChatReplyResponse maps a persona reply and its archived record to the
// chat DTO. The record is nil when archiving was skipped or failed; the reply
// is still served, just without a record id.
func NewChatReplyResponse(personaTag string, reply persona.Reply, record *archive.ConversationRecord) ChatReplyResponse {
	resp := ChatReplyResponse{
		Response:  reply.Response,
		Persona:   personaTag,
		Mode:      reply.Mode,
		Emoji:     reply.Emoji,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if record != nil {
		resp.RecordID = record.PublicID
		resp.Timestamp = record.Timestamp.Format(time.RFC3339)
	}
	return resp
}

// ConsentPreferenceResponse is returned by the consent endpoints.
type ConsentPreferenceResponse struct {
	SessionID                 string `json:"session_id"`
	ConsentLevel              string `json:"consent_level"`
	DataRetentionDays         int    `json:"data_retention_days"`
	CollectiveLearningEnabled bool   `json:"collective_learning_enabled"`
	AnonymizationRequired     bool   `json:"anonymization_required"`
	UpdatedAt                 string `json:"updated_at,omitempty"`
}

// NewConsentPreferenceResponse maps the domain preference to DTO.
func NewConsentPreferenceResponse(preference *consent.Preference) ConsentPreferenceResponse {
	resp := ConsentPreferenceResponse{
		SessionID:                 preference.SessionID,
		ConsentLevel:              string(preference.Level),
		DataRetentionDays:         preference.DataRetentionDays,
		CollectiveLearningEnabled: preference.CollectiveLearningEnabled,
		AnonymizationRequired:     preference.AnonymizationRequired,
	}
	if !preference.UpdatedAt.IsZero() {
		resp.UpdatedAt = preference.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// WisdomPatternListResponse wraps wisdom patterns for consistent list responses.
type WisdomPatternListResponse struct {
	Data []*archive.WisdomPattern `json:"data"`
}

// CollectiveInsightListResponse wraps collective insights for consistent list
// responses.
type CollectiveInsightListResponse struct {
	Data []*archive.CollectiveInsight `json:"data"`
}

// RetentionSweepResponse reports one retention sweep run.
type RetentionSweepResponse struct {
	Deleted int64  `json:"deleted"`
	SweptAt string `json:"swept_at"`
}
