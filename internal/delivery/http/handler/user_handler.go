package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gin-gonic/gin"
)

// ActivityTracker is the part of the presence tracker the user endpoints need.
type ActivityTracker interface {
	TouchActivity(ctx context.Context, userID string) error
	IsOnline(ctx context.Context, userID string) (bool, error)
}

type UserHandler struct {
	tracker ActivityTracker
	now     func() time.Time
}

func NewUserHandler(tracker ActivityTracker) *UserHandler {
	return &UserHandler{tracker: tracker, now: time.Now}
}

// MeResponse represents the caller's account state
type MeResponse struct {
	ID             string      `json:"id"`
	Tier           domain.Tier `json:"tier"`
	IsPro          bool        `json:"is_pro"`
	QuotaCount     int         `json:"quota_count"`
	QuotaRemaining int         `json:"quota_remaining"`
	Online         bool        `json:"online"`
}

// Heartbeat handles POST /activity
func (h *UserHandler) Heartbeat(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.tracker.TouchActivity(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "ok"})
}

// Me handles GET /me. Reading your own account counts as activity.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if err := h.tracker.TouchActivity(ctx, user.ID); err != nil {
		respondError(c, err)
		return
	}
	online, err := h.tracker.IsOnline(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		ID:             user.ID,
		Tier:           user.Tier,
		IsPro:          user.IsPro(),
		QuotaCount:     user.QuotaCount,
		QuotaRemaining: user.QuotaRemaining(h.now()),
		Online:         online,
	})
}
