package handler

import (
	"net/http"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type SwipeHandler struct {
	swipeUseCase *swipe.SwipeUseCase
}

func NewSwipeHandler(swipeUseCase *swipe.SwipeUseCase) *SwipeHandler {
	return &SwipeHandler{swipeUseCase: swipeUseCase}
}

// CreateSwipeRequest represents a swipe on another user
type CreateSwipeRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required"`
	Decision     string `json:"decision" binding:"required,decision"`
}

// CreateSwipe handles POST /swipes
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateSwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), user, req.TargetUserID, domain.Decision(req.Decision))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetMatches handles GET /matches
func (h *SwipeHandler) GetMatches(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	matches, err := h.swipeUseCase.ListMatches(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetLikesReceived handles GET /likes/received (Pro only)
func (h *SwipeHandler) GetLikesReceived(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	likes, err := h.swipeUseCase.GetLikesReceived(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}
