package http

import (
	"github.com/gin-gonic/gin"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/handler"
	"github.com/skillswap-app/skillswap-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	matchHandler   *handler.MatchHandler
	sessionHandler *handler.SessionHandler
	messageHandler *handler.MessageHandler
	feedHandler    *handler.FeedHandler
	postHandler    *handler.PostHandler
	suggestHandler *handler.SuggestHandler
	skillHandler   *handler.SkillHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	matchHandler *handler.MatchHandler,
	sessionHandler *handler.SessionHandler,
	messageHandler *handler.MessageHandler,
	feedHandler *handler.FeedHandler,
	postHandler *handler.PostHandler,
	suggestHandler *handler.SuggestHandler,
	skillHandler *handler.SkillHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		matchHandler:   matchHandler,
		sessionHandler: sessionHandler,
		messageHandler: messageHandler,
		feedHandler:    feedHandler,
		postHandler:    postHandler,
		suggestHandler: suggestHandler,
		skillHandler:   skillHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/signup", r.authHandler.Signup)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Skill catalog (public)
		v1.GET("/skills", r.skillHandler.List)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.GET("/:user_id", r.profileHandler.GetProfile)
			}

			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.List)
				matches.POST("/connect", r.matchHandler.Connect)
				matches.PUT("/:partner_id/status", r.matchHandler.UpdateStatus)
				matches.POST("/:partner_id/rating", r.matchHandler.Rate)
			}

			sessions := protected.Group("/sessions")
			{
				sessions.POST("/propose", r.sessionHandler.Propose)
				sessions.POST("/respond", r.sessionHandler.Respond)
				sessions.GET("/:partner_id/export/ics", r.sessionHandler.ExportICS)
				sessions.GET("/:partner_id/export/google", r.sessionHandler.ExportGoogle)
			}

			messages := protected.Group("/messages")
			{
				messages.GET("/:partner_id", r.messageHandler.History)
				messages.PUT("/:partner_id/:message_id/reaction", r.messageHandler.React)
			}

			posts := protected.Group("/posts")
			{
				posts.POST("", r.postHandler.Create)
				posts.GET("/:user_id", r.postHandler.ListByAuthor)
			}

			protected.GET("/feed/candidates", r.feedHandler.Candidates)
			protected.POST("/suggestions", r.suggestHandler.ConversationStarters)

			admin := protected.Group("/admin")
			admin.Use(r.authMiddleware.RequireAdmin())
			{
				admin.DELETE("/users/:user_id", r.adminHandler.DeleteUser)
			}
		}
	}

	return router
}
