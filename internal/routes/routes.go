package routes

import (
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all application routes.
func SetupRoutes(
	router *gin.Engine,
	authController *controllers.AuthController,
	articleController *controllers.ArticleController,
	subscriberController *controllers.SubscriberController,
	adminController *controllers.AdminController,
	sessionAuth gin.HandlerFunc,
) {
	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Auth routes: /api/auth/*
	authGroup := api.Group("/auth")
	RegisterAuthRoutes(authGroup, authController)

	// Article routes: /api/news/* and /api/articles
	RegisterArticleRoutes(api, articleController, sessionAuth)

	// Subscription routes: /api/subscribe/*, /api/unsubscribe
	RegisterSubscriberRoutes(api, subscriberController)

	// Admin routes: /api/admin/*
	adminGroup := api.Group("/admin")
	adminGroup.Use(sessionAuth)
	{
		adminGroup.GET("/stats", adminController.Stats)
	}
}
