package handler

import (
	"net/http"
	"strings"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/usecase/feed"
	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUseCase *feed.FeedUseCase
}

func NewFeedHandler(feedUseCase *feed.FeedUseCase) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase}
}

// FeedQuery represents the discovery filters accepted on GET /feed
type FeedQuery struct {
	Position     *string  `form:"position"`
	Tribe        *string  `form:"tribe"`
	LookingFor   *string  `form:"looking_for"`
	MinAge       *int     `form:"min_age" binding:"omitempty,gte=0"`
	MaxAge       *int     `form:"max_age" binding:"omitempty,gte=0"`
	AvailableNow bool     `form:"available_now"`
	MaxDistance  *float64 `form:"max_distance" binding:"omitempty,gte=0"`
	OnlineOnly   bool     `form:"online_only"`
}

func (q *FeedQuery) toFilter() feed.FeedFilter {
	return feed.FeedFilter{
		CandidateFilter: domain.CandidateFilter{
			Position:     nonEmpty(q.Position),
			Tribe:        nonEmpty(q.Tribe),
			LookingFor:   nonEmpty(q.LookingFor),
			MinAge:       q.MinAge,
			MaxAge:       q.MaxAge,
			AvailableNow: q.AvailableNow,
		},
		MaxDistanceKm: q.MaxDistance,
		OnlineOnly:    q.OnlineOnly,
	}
}

// GetFeed handles GET /feed
func (h *FeedHandler) GetFeed(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	profiles, err := h.feedUseCase.GetFeed(c.Request.Context(), user, query.toFilter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// nonEmpty treats a blank query value such as ?position= as absent.
func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
