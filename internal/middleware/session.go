package middleware

import (
	"net/http"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/gin-gonic/gin"
)

// SessionAuth guards admin routes. It reads the session cookie, verifies the
// signed token, and aborts with a uniform 401 on any failure: a missing
// cookie, a bad signature, and an expired token are all just "unauthorized".
func SessionAuth(authService *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		userID, err := authService.VerifySessionToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
