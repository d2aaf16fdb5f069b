package routes

import (
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.RouterGroup, articleController *controllers.ArticleController, sessionAuth gin.HandlerFunc) {
	// Public article endpoints
	news := router.Group("/news")
	{
		// GET /news - All articles, newest first
		news.GET("", articleController.GetAll)

		// GET /news/:id - Single article
		news.GET("/:id", articleController.GetByID)
	}

	// GET /articles?skip=&take= - Paginated listing after the featured set
	router.GET("/articles", articleController.List)

	// Protected article endpoints (require a valid admin session)
	protected := router.Group("/news")
	protected.Use(sessionAuth)
	{
		// POST /news - Publish an article and trigger the newsletter
		protected.POST("", articleController.Create)

		// PUT /news/:id - Partial update
		protected.PUT("/:id", articleController.Update)

		// DELETE /news/:id
		protected.DELETE("/:id", articleController.Delete)
	}
}
