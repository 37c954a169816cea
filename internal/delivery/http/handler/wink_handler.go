package handler

import (
	"net/http"

	"github.com/gdugdh24/matchcore/internal/usecase/wink"
	"github.com/gin-gonic/gin"
)

type WinkHandler struct {
	winkUseCase *wink.WinkUseCase
}

func NewWinkHandler(winkUseCase *wink.WinkUseCase) *WinkHandler {
	return &WinkHandler{winkUseCase: winkUseCase}
}

// Send handles POST /winks
func (h *WinkHandler) Send(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.winkUseCase.Send(c.Request.Context(), user.ID, req.TargetUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// List handles GET /winks
func (h *WinkHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	winks, err := h.winkUseCase.ListReceived(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, winks)
}
