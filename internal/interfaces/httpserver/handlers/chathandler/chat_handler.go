package chathandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/chaosweaver007/Genesis/internal/domain/archive"
	"github.com/chaosweaver007/Genesis/internal/domain/persona"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/metrics"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/observability"
	chatrequests "github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/requests/chat"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/responses"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
)

// ChatHandler handles the persona chat endpoints.
type ChatHandler struct {
	engines        *persona.Engines
	archiveService *archive.Service
	logger         zerolog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(engines *persona.Engines, archiveService *archive.Service, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		engines:        engines,
		archiveService: archiveService,
		logger:         logger,
	}
}

// ChatSteven handles POST /v1/chat/steven
// @Summary Chat with Steven
// @Description Generates a reply in the Chaos Weaver voice and archives the exchange under the session's consent level.
// @Tags Chat API
// @Accept json
// @Produce json
// @Param request body chatrequests.ChatRequest true "Chat request"
// @Success 200 {object} responses.ChatReplyResponse "Generated reply"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/chat/steven [post]
func (h *ChatHandler) ChatSteven(reqCtx *gin.Context) {
	h.respond(reqCtx, persona.TagSteven, h.engines.Steven)
}

// ChatSarah handles POST /v1/chat/sarah
// @Summary Chat with Sarah
// @Description Generates a reply in the Divine Feminine voice and archives the exchange under the session's consent level.
// @Tags Chat API
// @Accept json
// @Produce json
// @Param request body chatrequests.ChatRequest true "Chat request"
// @Success 200 {object} responses.ChatReplyResponse "Generated reply"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/chat/sarah [post]
func (h *ChatHandler) ChatSarah(reqCtx *gin.Context) {
	h.respond(reqCtx, persona.TagSarah, h.engines.Sarah)
}

// ChatCollective handles POST /v1/chat/collective
// @Summary Chat with the collective commune
// @Description Blends both voices into a commune reply and archives the exchange under the session's consent level.
// @Tags Chat API
// @Accept json
// @Produce json
// @Param request body chatrequests.ChatRequest true "Chat request"
// @Success 200 {object} responses.ChatReplyResponse "Generated reply"
// @Failure 400 {object} responses.ErrorResponse "Invalid request"
// @Failure 500 {object} responses.ErrorResponse "Internal error"
// @Router /v1/chat/collective [post]
func (h *ChatHandler) ChatCollective(reqCtx *gin.Context) {
	h.respond(reqCtx, persona.TagCollective, h.engines.Collective)
}

// respond runs the shared chat flow: bind, generate, archive. Archiving
// failures are logged and the reply is still served, without a record id.
func (h *ChatHandler) respond(reqCtx *gin.Context, personaTag string, responder persona.Responder) {
	ctx, span := observability.StartSpan(reqCtx.Request.Context(), "genesis", "ChatHandler.Chat")
	defer span.End()

	var req chatrequests.ChatRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		observability.RecordError(ctx, err)
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation,
			"invalid request body", "f412c857-b6e7-402e-9fd7-1352f7ef5aef")
		return
	}

	// Raw message text stays out of the span; only its length is recorded.
	observability.AddSpanAttributes(ctx,
		attribute.String("chat.persona", personaTag),
		attribute.String("chat.session_id", req.SessionID),
		attribute.Int("chat.message_length", len(req.Message)),
	)

	reply, err := responder.Respond(ctx, req.Message, req.Mode)
	if err != nil {
		observability.RecordError(ctx, err)
		responses.HandleError(reqCtx, err, "failed to compose reply")
		return
	}
	metrics.RecordChatReply(personaTag, reply.Mode)
	observability.AddSpanAttributes(ctx,
		attribute.String("chat.mode", reply.Mode),
	)

	observability.AddSpanEvent(ctx, "archiving_conversation")
	record, err := h.archiveService.StoreInteraction(ctx, req.SessionID, personaTag, req.Message, reply.Response)
	if err != nil {
		// Log error but don't fail the request
		h.logger.Warn().Err(err).
			Str("persona", personaTag).
			Str("session_id", req.SessionID).
			Msg("conversation archiving failed")
		observability.AddSpanEvent(ctx, "conversation_archiving_failed",
			attribute.String("error", err.Error()),
		)
	} else {
		metrics.RecordArchivedConversation(string(record.ConsentLevel))
		observability.AddSpanAttributes(ctx,
			attribute.Bool("chat.archived", true),
		)
	}

	observability.SetSpanStatus(ctx, codes.Ok, "chat reply served")
	reqCtx.JSON(http.StatusOK, responses.NewChatReplyResponse(personaTag, reply, record))
}
