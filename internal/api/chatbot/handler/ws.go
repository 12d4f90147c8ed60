package chatbotHandler

import (
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"

	"PortfolioGolang/internal/api/chatbot"
	"PortfolioGolang/pkg/log"
)

type socketError struct {
	Error string `json:"error"`
}

// HandleSocket serves a chat conversation over one WebSocket connection.
// Each inbound JSON frame is a TurnRequest; each reply is a TurnResponse.
// Malformed frames get an error frame and the conversation continues.
func (h *ChatbotHandler) HandleSocket(conn *websocket.Conn) {
	defer conn.Close()

	h.log.WithFields(log.Fields{
		"remote": conn.RemoteAddr().String(),
	}).Info("Chat WebSocket connected")

	for {
		var req chatbot.TurnRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(log.Fields{
					"remote": conn.RemoteAddr().String(),
					"error":  err.Error(),
				}).Warn("Chat WebSocket read failed")
			}
			return
		}

		if err := h.validator.Struct(req); err != nil {
			if err := conn.WriteJSON(socketError{Error: "invalid turn frame"}); err != nil {
				return
			}
			continue
		}

		c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		result, err := h.chatbotService.HandleTurn(c, req)
		cancel()
		if err != nil {
			h.log.WithFields(log.Fields{
				"remote": conn.RemoteAddr().String(),
				"error":  err.Error(),
			}).Error("Chat WebSocket turn failed")
			if err := conn.WriteJSON(socketError{Error: "failed to process turn"}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(result); err != nil {
			return
		}
	}
}
