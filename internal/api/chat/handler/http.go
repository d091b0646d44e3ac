package chatHandler

import (
	chatService "EcommerceChatbot/internal/api/chat/service"
	"EcommerceChatbot/internal/middleware"
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
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	srv.Post("/chat", h.middleware.NewRateLimiter, h.Chat)

	chat := srv.Group("/chat")
	chat.Post("/classify", h.middleware.NewRateLimiter, h.Classify)
	chat.Get("/status", h.Status)

	chat.Use("/ws", wsMiddleware)
	chat.Get("/ws", h.middleware.NewRateLimiter, websocket.New(h.handleWebSocket))
}
