package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adeyemio/simple-auth-api/config"
	"github.com/adeyemio/simple-auth-api/internal/auth"
	"github.com/adeyemio/simple-auth-api/internal/health"
	"github.com/adeyemio/simple-auth-api/internal/infrastructure/database"
	"github.com/adeyemio/simple-auth-api/internal/middleware"
	"github.com/adeyemio/simple-auth-api/internal/user"
)

func main() {
	// 0. Load Config
	env := os.Getenv("APP_ENV")
	cfg, err := config.Load(env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 1. Setup
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 2. Database
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := user.NewGormStore(db)
	if err := store.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := store.Seed(cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// 3. Services & Middleware
	tokenService := auth.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		time.Duration(cfg.JWT.ExpirationMinutes)*time.Minute,
	)
	authService := auth.NewService(store)
	authMiddleware := middleware.AuthMiddleware(tokenService)

	// Dev UX: Print a valid token for testing
	if cfg.Server.Mode == "debug" {
		devToken, _ := tokenService.GenerateToken(&user.User{
			Email:     cfg.Seed.AdminEmail,
			FirstName: "Dev",
			LastName:  "Admin",
		}, []string{"Admin"})
		log.Printf("\n🔑 [DEV MODE] Access Token: %s\n", devToken)
	}

	// 4. Handlers
	healthHandler := health.NewHealthHandler()
	authHandler := auth.NewHandler(authService, tokenService)
	userHandler := user.NewHandler(store)

	// 5. Routes
	// Public
	r.GET("/health", healthHandler.Check)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Simple Auth API",
			"env":     env,
			"status":  "running",
		})
	})
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)

	// Protected
	users := r.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("", middleware.RequireRole("Admin"), userHandler.GetUsers)
		users.GET("/me", userHandler.GetSignedInUser)
	}

	// 6. Run
	addr := ":" + cfg.Server.Port
	log.Printf("Starting Simple Auth API on %s (env: %s)", addr, env)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
