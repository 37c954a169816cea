package handler

import (
	"net/http"

	"github.com/gdugdh24/matchcore/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// GetMyProfile handles GET /profiles/me
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetMyProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetProfileByUserID handles GET /profiles/:user_id
// Private photos are included only for the owner or a granted viewer.
func (h *ProfileHandler) GetProfileByUserID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	resp, err := h.profileUseCase.View(c.Request.Context(), user, c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProfileViews handles GET /profile-views (Pro only)
func (h *ProfileHandler) GetProfileViews(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.profileUseCase.ProfileViews(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// LogScreenshotAttempt handles POST /screenshot-attempts
func (h *ProfileHandler) LogScreenshotAttempt(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.profileUseCase.LogScreenshot(c.Request.Context(), user.ID, req.TargetUserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{Message: "attempt logged"})
}

// GetScreenshotAttempts handles GET /screenshot-attempts
func (h *ProfileHandler) GetScreenshotAttempts(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	attempts, err := h.profileUseCase.ListScreenshots(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}
