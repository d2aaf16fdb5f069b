package routes

import (
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	// POST /auth/login - Admin login (sets session cookie)
	router.POST("/login", authController.Login)

	// POST /auth/logout - Clear session cookie (always succeeds)
	router.POST("/logout", authController.Logout)
}
