package handler

import (
	"net/http"

	"github.com/gdugdh24/matchcore/internal/usecase/album"
	"github.com/gin-gonic/gin"
)

type AlbumHandler struct {
	albumUseCase *album.AlbumUseCase
}

func NewAlbumHandler(albumUseCase *album.AlbumUseCase) *AlbumHandler {
	return &AlbumHandler{albumUseCase: albumUseCase}
}

// RespondRequest answers a private album request
type RespondRequest struct {
	RequestID string `json:"request_id" binding:"required"`
	Accept    *bool  `json:"accept" binding:"required"`
}

// RequestAccess handles POST /album-access/requests
func (h *AlbumHandler) RequestAccess(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.albumUseCase.RequestAccess(c.Request.Context(), user.ID, req.TargetUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// ListRequests handles GET /album-access/requests
func (h *AlbumHandler) ListRequests(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	requests, err := h.albumUseCase.ListPending(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Respond handles POST /album-access/respond
func (h *AlbumHandler) Respond(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	answered, err := h.albumUseCase.Respond(c.Request.Context(), req.RequestID, user.ID, *req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request_id": answered.ID, "state": answered.State})
}
