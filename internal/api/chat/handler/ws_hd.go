package chatHandler

import (
	"EcommerceChatbot/internal/api/chat"
	"EcommerceChatbot/internal/middleware"
	contextPkg "EcommerceChatbot/pkg/context"
	"EcommerceChatbot/pkg/handlerUtil"
	"EcommerceChatbot/pkg/log"
	"errors"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
	"time"
)

const (
	wsReadTimeout  = 5 * time.Minute
	wsWriteTimeout = 10 * time.Second
	wsAnswerBudget = 10 * time.Second
)

// handleWebSocket answers every text frame with one {"response": ...} frame.
func (h *ChatHandler) handleWebSocket(c *websocket.Conn) {
	requestID, _ := c.Locals(middleware.RequestIDKey).(string)
	logger := h.log.WithFields(log.Fields{
		"request_id": requestID,
	})

	logger.Info("Chat WebSocket client connected")
	defer logger.Info("Chat WebSocket client disconnected")

	base := contextPkg.WithRequestID(context.Background(), requestID)

	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			logger.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Errorf("Chat WebSocket error: %v", err)
			}
			break
		}

		var reply interface{}
		if messageType != websocket.TextMessage {
			logger.Warnf("Received unexpected message type: %d", messageType)
			reply = handlerUtil.ErrorResponse{Error: chat.ErrUnsupportedFrame.Error()}
		} else {
			reply = h.answerFrame(base, string(message))
		}

		if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
			logger.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(reply); err != nil {
			logger.Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}

func (h *ChatHandler) answerFrame(base context.Context, message string) interface{} {
	c, cancel := context.WithTimeout(base, wsAnswerBudget)
	defer cancel()

	answer, err := h.chatService.Answer(c, message)
	if err != nil {
		if !errors.Is(err, chat.ErrEmptyMessage) {
			h.log.WithFields(log.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"error":      err.Error(),
			}).Warn("Failed to answer WebSocket message")
		}
		return handlerUtil.ErrorResponse{Error: err.Error()}
	}

	return chat.ChatResponse{Response: answer}
}
