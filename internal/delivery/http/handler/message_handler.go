package handler

import (
	"net/http"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/usecase/message"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUseCase *message.MessageUseCase
}

func NewMessageHandler(messageUseCase *message.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUseCase: messageUseCase}
}

// SendMessageRequest represents a new chat message. Type-specific payload
// rules are enforced by the domain.
type SendMessageRequest struct {
	MatchID   string   `json:"match_id" binding:"required"`
	Content   string   `json:"content" binding:"max=4000"`
	Type      string   `json:"type" binding:"required,message_type"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	PhotoURL  *string  `json:"photo_url" binding:"omitempty,url"`
}

// Send handles POST /messages
func (h *MessageHandler) Send(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	msg, err := h.messageUseCase.Send(c.Request.Context(), req.MatchID, user.ID, message.SendInput{
		Content:   req.Content,
		Type:      domain.MessageType(req.Type),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PhotoURL:  req.PhotoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message_id": msg.ID})
}

// GetThread handles GET /matches/:match_id/messages
func (h *MessageHandler) GetThread(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.messageUseCase.FetchThread(c.Request.Context(), c.Param("match_id"), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Delete handles DELETE /messages/:message_id (Pro only)
func (h *MessageHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.messageUseCase.Delete(c.Request.Context(), c.Param("message_id"), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "message deleted"})
}
