package handler

import (
	"net/http"

	"github.com/gdugdh24/matchcore/internal/delivery/http/middleware"
	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// TargetRequest is the body of endpoints acting on another user.
type TargetRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required"`
}

var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrUnauthorized:  {http.StatusUnauthorized, "unauthorized"},
	domain.ErrNotFound:      {http.StatusNotFound, "not_found"},
	domain.ErrForbidden:     {http.StatusForbidden, "forbidden"},
	domain.ErrQuotaExceeded: {http.StatusTooManyRequests, "quota_exceeded"},
	domain.ErrConflict:      {http.StatusConflict, "conflict"},
	domain.ErrValidation:    {http.StatusBadRequest, "validation"},
	domain.ErrSelfReference: {http.StatusBadRequest, "self_reference"},
}

// respondError maps err to its kind's status. Unclassified errors are logged
// and reported as 500 without details.
func respondError(c *gin.Context, err error) {
	if kind := domain.KindOf(err); kind != nil {
		s := errorStatus[kind]
		c.JSON(s.status, ErrorResponse{Error: err.Error(), Code: s.code})
		return
	}

	_ = c.Error(err)
	logger.Error(c.Request.Context(), "request failed",
		logger.String("path", c.FullPath()),
		logger.ErrorField(err),
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "internal"})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "validation"})
}

func currentUser(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, domain.ErrUnauthorized)
		return nil, false
	}
	return user, true
}
