package chatHandler

import (
	chatService "StorefrontGolang/internal/api/chat/service"
	"StorefrontGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")
	chat.Use(h.middleware.NewRateLimiter)

	chat.Get("/suggestions", h.GetSuggestions)

	// Admin endpoints: the category/intent tables are data, so new intents
	// and categories need no code change.
	admin := chat.Group("/admin")
	admin.Use(h.middleware.NewTokenMiddleware)
	admin.Get("/categories", h.GetCategories)
	admin.Post("/categories", h.CreateCategory)
	admin.Get("/intents", h.GetIntents)
	admin.Post("/test", h.TestSelector)

	// Conversation turns
	chat.Post("/:conversation_id/message", h.SubmitMessage)
	chat.Get("/:conversation_id/history", h.GetHistory)
	chat.Delete("/:conversation_id/history", h.ClearHistory)
	chat.Get("/:conversation_id/export", h.ExportTranscript)

	// Live widget stream
	chat.Use("/:conversation_id/ws", h.UpgradeWebsocket)
	chat.Get("/:conversation_id/ws", websocket.New(h.StreamConversation))
}
