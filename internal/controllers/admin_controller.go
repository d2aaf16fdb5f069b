package controllers

import (
	"net/http"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	statsService *services.StatsService
}

func NewAdminController(statsService *services.StatsService) *AdminController {
	return &AdminController{statsService: statsService}
}

// Stats handles GET /admin/stats (protected).
func (ac *AdminController) Stats(c *gin.Context) {
	stats, err := ac.statsService.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
