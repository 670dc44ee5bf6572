package chatHandler

import (
	"context"
	"strings"

	"StorefrontGolang/internal/api/chat"
	contextPkg "StorefrontGolang/pkg/context"
	"StorefrontGolang/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type wsInbound struct {
	Text     string `json:"text"`
	UserName string `json:"user_name,omitempty"`
}

type wsOutbound struct {
	Type         string      `json:"type"`
	Message      interface{} `json:"message,omitempty"`
	QuickReplies []string    `json:"quick_replies,omitempty"`
	Context      string      `json:"context,omitempty"`
	Error        string      `json:"error,omitempty"`
}

func (h *ChatHandler) UpgradeWebsocket(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		ctx.Locals("conversation_id", ctx.Params("conversation_id"))
		ctx.Locals("ws_request_id", h.middleware.GetRequestID(ctx))
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

// StreamConversation runs the live widget session: each inbound text becomes
// one turn, with a typing event emitted while the thinking delay runs.
// Turns inside one socket are processed strictly one at a time.
func (h *ChatHandler) StreamConversation(conn *websocket.Conn) {
	conversationID, _ := conn.Locals("conversation_id").(string)
	requestID, _ := conn.Locals("ws_request_id").(string)

	if conversationID == "" {
		_ = conn.WriteJSON(wsOutbound{Type: "error", Error: "conversation id is required"})
		_ = conn.Close()
		return
	}

	c := contextPkg.WithRequestID(context.Background(), requestID)

	h.log.WithFields(log.Fields{
		"request_id":      requestID,
		"conversation_id": conversationID,
	}).Info("Chat stream opened")

	defer func() {
		h.log.WithFields(log.Fields{
			"request_id":      requestID,
			"conversation_id": conversationID,
		}).Info("Chat stream closed")
		_ = conn.Close()
	}()

	for {
		var inbound wsInbound
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}

		if strings.TrimSpace(inbound.Text) == "" {
			// blank input is a silent no-op, mirroring the widget
			continue
		}

		if err := conn.WriteJSON(wsOutbound{Type: "typing"}); err != nil {
			return
		}

		turn, err := h.chatService.SubmitMessage(c, conversationID, chat.SendMessageRequest{
			Text:     inbound.Text,
			UserName: inbound.UserName,
		})
		if err != nil {
			if writeErr := conn.WriteJSON(wsOutbound{Type: "error", Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(wsOutbound{
			Type:         "message",
			Message:      turn.Message,
			QuickReplies: turn.QuickReplies,
			Context:      turn.Context,
		}); err != nil {
			return
		}
	}
}
