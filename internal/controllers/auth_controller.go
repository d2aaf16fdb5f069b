package controllers

import (
	"errors"
	"net/http"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthController(authService *services.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /auth/login. On success the session token is persisted
// as an HTTP-only, same-site cookie scoped to the whole site with a lifetime
// matching the token expiry.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	token, err := ac.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		case errors.Is(err, services.ErrAccountLocked):
			c.JSON(http.StatusLocked, gin.H{"error": "Account locked. Try again later."})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ac.setSessionCookie(c, token, int(ac.authService.SessionTTL().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
	})
}

// Logout handles POST /auth/logout. Tokens are stateless, so logout only
// clears the client cookie; a token copied elsewhere stays valid until its
// natural expiry.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setSessionCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout successful",
	})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := ac.cfg.Server.Mode == "release"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(ac.cfg.Session.CookieName, token, maxAge, "/", "", secure, true)
}
