package main

import (
	"context"
	"login-backend/pkg/api/middleware"
	"login-backend/pkg/api/routes/auth" // Login and token check handlers
	"login-backend/pkg/api/routes/user" // Signup handler
	"login-backend/pkg/config"
	"login-backend/pkg/database"
	"login-backend/pkg/logger"
	"login-backend/pkg/metrics"
	"login-backend/pkg/retry"
	"os"
	"strings"
	"time"

	cors "github.com/OnlyNico43/gin-cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func main() {
	cfg := config.LoadDefaultConfig()

	log := logger.NewLogger(os.Stdout, "Main", cfg.LogLevel, "System")

	// missing secrets surface as 500s on /auth/login
	for _, problem := range cfg.Validate() {
		log.PrintfWarning("Configuration problem: %s", problem)
	}

	var logLevel gormLogger.LogLevel
	if !cfg.DebugMode {
		log.PrintfInfo("Starting in release mode")
		gin.SetMode(gin.ReleaseMode)
		logLevel = gormLogger.Silent
	} else {
		log.PrintfInfo("Starting in debug mode")
		gin.SetMode(gin.DebugMode)
		logLevel = gormLogger.Info
	}

	connectToDatabase := retry.WithRetry(func() (*database.DatabaseInst, error) {
		return database.NewDatabaseInst(cfg.DatabaseDriver, cfg.DatabaseURL, &gorm.Config{
			Logger:         gormLogger.Default.LogMode(logLevel),
			TranslateError: true,
		})
	}, log, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	dbInst, err := connectToDatabase(ctx)
	cancel()
	if err != nil {
		log.PrintfError("Failed to connect to database: %s", err)
		panic(err)
	}

	if err := dbInst.Migrate(); err != nil {
		log.PrintfError("Failed to migrate database: %s", err)
		panic(err)
	}

	users := database.NewUserRepository(dbInst.GetClient())
	appMetrics := metrics.New()

	router := gin.New()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.PrintfError("Could not set trusted proxies list")
		return
	}

	router.RedirectFixedPath = true
	router.RedirectTrailingSlash = true

	if cfg.FrontendURL != "" {
		log.PrintfInfo("Frontend URL for cors: %s", cfg.FrontendURL)
		router.Use(cors.CorsMiddleware(cors.Config{
			AllowedOrigins:   strings.Split(cfg.FrontendURL, ", "),
			AllowedMethods:   []string{"GET", "POST"},
			AllowedHeaders:   []string{"Authorization", "Content-Length", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.Use(middleware.ConfigMiddleware(cfg))
	router.Use(middleware.UserRepositoryMiddleware(users))
	router.Use(middleware.MetricsMiddleware(appMetrics))
	router.Use(gin.Recovery())

	router.GET("/metrics", appMetrics.Handler())

	authEndpoints := router.Group("/auth")
	{
		log.PrintfInfo("Registering auth endpoints")
		auth.RegisterAuthEndpoints(authEndpoints)
	}

	userEndpoints := router.Group("/user")
	{
		log.PrintfInfo("Registering user endpoints")
		user.RegisterUserEndpoints(userEndpoints)
	}

	log.PrintfInfo("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.PrintfError("Failed to start server: %s", err)
		return
	}
}
