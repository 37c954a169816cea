package handler

import (
	"net/http"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/usecase/publicchat"
	"github.com/gin-gonic/gin"
)

type PublicChatHandler struct {
	chatUseCase *publicchat.PublicChatUseCase
}

func NewPublicChatHandler(chatUseCase *publicchat.PublicChatUseCase) *PublicChatHandler {
	return &PublicChatHandler{chatUseCase: chatUseCase}
}

type PublicMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// PublicChatQuery represents the room filters accepted on GET /public-chat/messages
type PublicChatQuery struct {
	Radius       *float64 `form:"radius" binding:"omitempty,gte=0"`
	Position     *string  `form:"position"`
	Tribe        *string  `form:"tribe"`
	LookingFor   *string  `form:"looking_for"`
	MinAge       *int     `form:"min_age" binding:"omitempty,gte=0"`
	MaxAge       *int     `form:"max_age" binding:"omitempty,gte=0"`
	AvailableNow bool     `form:"available_now"`
}

func (q *PublicChatQuery) toFilter() publicchat.RoomFilter {
	return publicchat.RoomFilter{
		CandidateFilter: domain.CandidateFilter{
			Position:     nonEmpty(q.Position),
			Tribe:        nonEmpty(q.Tribe),
			LookingFor:   nonEmpty(q.LookingFor),
			MinAge:       q.MinAge,
			MaxAge:       q.MaxAge,
			AvailableNow: q.AvailableNow,
		},
		RadiusKm: q.Radius,
	}
}

// Send handles POST /public-chat/messages
func (h *PublicChatHandler) Send(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req PublicMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.chatUseCase.Send(c.Request.Context(), user.ID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// List handles GET /public-chat/messages
func (h *PublicChatHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var query PublicChatQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	messages, err := h.chatUseCase.List(c.Request.Context(), user.ID, query.toFilter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
