package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/gin-gonic/gin"
)

type SubscriberController struct {
	subscriberService *services.SubscriberService
}

func NewSubscriberController(subscriberService *services.SubscriberService) *SubscriberController {
	return &SubscriberController{subscriberService: subscriberService}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /subscribe.
func (sc *SubscriberController) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email is required",
		})
		return
	}

	message, err := sc.subscriberService.Subscribe(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Email already subscribed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to subscribe. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// Check handles POST /subscribe/check. It always answers 200; lookup errors
// just read as "not subscribed".
func (sc *SubscriberController) Check(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusOK, gin.H{"isSubscribed": false})
		return
	}

	subscribed, err := sc.subscriberService.IsSubscribed(req.Email)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"isSubscribed": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isSubscribed": subscribed})
}

// Unsubscribe handles POST /unsubscribe.
func (sc *SubscriberController) Unsubscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email is required",
		})
		return
	}

	if err := sc.subscriberService.Unsubscribe(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to unsubscribe. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Unsubscribed successfully",
	})
}
