package main

import (
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/controllers"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/database"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/mailer"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/middleware"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/routes"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	setupLogging(cfg)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Connect(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := database.RunMigrations(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	db := database.GetDB()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	subscriberRepo := repositories.NewSubscriberRepository(db)

	// Email transport (disabled fallback when no API key is configured)
	mail := mailer.New(cfg)

	// Services
	authService, err := services.NewAuthService(userRepo, services.NewMemoryAttemptStore(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	newsletterService, err := services.NewNewsletterService(subscriberRepo, mail, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize newsletter service")
	}
	articleService := services.NewArticleService(articleRepo, newsletterService)
	subscriberService := services.NewSubscriberService(subscriberRepo, mail, cfg)
	statsService := services.NewStatsService(articleRepo, subscriberRepo)

	// Controllers
	authController := controllers.NewAuthController(authService, cfg)
	articleController := controllers.NewArticleController(articleService)
	subscriberController := controllers.NewSubscriberController(subscriberService)
	adminController := controllers.NewAdminController(statsService)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging())
	router.Use(corsMiddleware(cfg))

	sessionAuth := middleware.SessionAuth(authService, cfg)
	routes.SetupRoutes(router, authController, articleController, subscriberController, adminController, sessionAuth)

	addr := cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port)
	go func() {
		log.Info().Str("addr", addr).Msg("Server running")
		if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to run server")
		}
	}()

	waitForShutdown()
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil || cfg.Logging.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Logging.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func waitForShutdown() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("Shutting down server...")
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowedOrigin := "*"
	if len(cfg.CORS.AllowedOrigins) > 0 {
		allowedOrigin = strings.Join(cfg.CORS.AllowedOrigins, ", ")
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
