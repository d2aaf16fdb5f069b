package routes

import (
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/controllers"
	"github.com/gin-gonic/gin"
)

func RegisterSubscriberRoutes(router *gin.RouterGroup, subscriberController *controllers.SubscriberController) {
	// POST /subscribe - Add or reactivate a subscription
	router.POST("/subscribe", subscriberController.Subscribe)

	// POST /subscribe/check - Report whether an email is actively subscribed
	router.POST("/subscribe/check", subscriberController.Check)

	// POST /unsubscribe - Deactivate a subscription
	router.POST("/unsubscribe", subscriberController.Unsubscribe)
}
