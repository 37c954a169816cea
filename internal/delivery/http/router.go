package http

import (
	"github.com/gdugdh24/matchcore/internal/delivery/http/handler"
	"github.com/gdugdh24/matchcore/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	swipeHandler   *handler.SwipeHandler
	feedHandler    *handler.FeedHandler
	albumHandler   *handler.AlbumHandler
	messageHandler *handler.MessageHandler
	profileHandler *handler.ProfileHandler
	winkHandler    *handler.WinkHandler
	chatHandler    *handler.PublicChatHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

func NewRouter(
	swipeHandler *handler.SwipeHandler,
	feedHandler *handler.FeedHandler,
	albumHandler *handler.AlbumHandler,
	messageHandler *handler.MessageHandler,
	profileHandler *handler.ProfileHandler,
	winkHandler *handler.WinkHandler,
	chatHandler *handler.PublicChatHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		swipeHandler:   swipeHandler,
		feedHandler:    feedHandler,
		albumHandler:   albumHandler,
		messageHandler: messageHandler,
		profileHandler: profileHandler,
		winkHandler:    winkHandler,
		chatHandler:    chatHandler,
		userHandler:    userHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
	}
}

func (r *Router) Setup() (*gin.Engine, error) {
	binding.EnableDecoderDisallowUnknownFields = true
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.GinLogger(),
		middleware.Metrics(),
	)

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(r.rateLimiter.Middleware(), r.authMiddleware.RequireAuth())
	{
		v1.GET("/me", r.userHandler.Me)
		v1.POST("/activity", r.userHandler.Heartbeat)

		v1.GET("/feed", r.feedHandler.GetFeed)

		v1.POST("/swipes", r.swipeHandler.CreateSwipe)
		v1.GET("/likes/received", r.swipeHandler.GetLikesReceived)

		matches := v1.Group("/matches")
		{
			matches.GET("", r.swipeHandler.GetMatches)
			matches.GET("/:match_id/messages", r.messageHandler.GetThread)
		}

		messages := v1.Group("/messages")
		{
			messages.POST("", r.messageHandler.Send)
			messages.DELETE("/:message_id", r.messageHandler.Delete)
		}

		albumAccess := v1.Group("/album-access")
		{
			albumAccess.POST("/requests", r.albumHandler.RequestAccess)
			albumAccess.GET("/requests", r.albumHandler.ListRequests)
			albumAccess.POST("/respond", r.albumHandler.Respond)
		}

		profiles := v1.Group("/profiles")
		{
			profiles.GET("/me", r.profileHandler.GetMyProfile)
			profiles.GET("/:user_id", r.profileHandler.GetProfileByUserID)
		}
		v1.GET("/profile-views", r.profileHandler.GetProfileViews)

		v1.POST("/screenshot-attempts", r.profileHandler.LogScreenshotAttempt)
		v1.GET("/screenshot-attempts", r.profileHandler.GetScreenshotAttempts)

		v1.POST("/winks", r.winkHandler.Send)
		v1.GET("/winks", r.winkHandler.List)

		publicChat := v1.Group("/public-chat")
		{
			publicChat.POST("/messages", r.chatHandler.Send)
			publicChat.GET("/messages", r.chatHandler.List)
		}
	}

	return router, nil
}
