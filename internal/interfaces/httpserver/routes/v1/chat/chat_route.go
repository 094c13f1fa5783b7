package chat

import (
	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver/handlers/chathandler"
)

// ChatRoute handles routing for the persona chat endpoints
type ChatRoute struct {
	handler *chathandler.ChatHandler
}

// NewChatRoute creates a new chat route handler
func NewChatRoute(handler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{handler: handler}
}

// RegisterRouter registers chat routes under /chat prefix
func (route *ChatRoute) RegisterRouter(router gin.IRouter) {
	chatRouter := router.Group("/chat")

	// POST /v1/chat/steven - Chaos Weaver voice
	chatRouter.POST("/steven", route.handler.ChatSteven)

	// POST /v1/chat/sarah - Divine Feminine voice
	chatRouter.POST("/sarah", route.handler.ChatSarah)

	// POST /v1/chat/collective - blended commune voice
	chatRouter.POST("/collective", route.handler.ChatCollective)
}
