package main

import (
	"log"
	"net/http"
	"os"

	_ "propwrite/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"propwrite/internal/auth"
	"propwrite/internal/cache"
	"propwrite/internal/config"
	"propwrite/internal/db"
	"propwrite/internal/handler"
	"propwrite/internal/llm"
	"propwrite/internal/model"
	"propwrite/internal/repository"
	"propwrite/internal/router"
	"propwrite/internal/service"
)

// @title Proposal Writer API
// @version 1.0
// @description AI proposal generation API with per-user daily quotas and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Proposal{},
			&model.Profile{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Proposal{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	profileRepo := repository.NewProfileRepository(gormDB)
	proposalRepo := repository.NewProposalRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize the generator client
	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set, generation requests will fail")
	}
	generator := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	quotaTracker := service.NewQuotaTracker(profileRepo, cfg.MaxDailyGenerations)
	proposalService := service.NewProposalService(userRepo, proposalRepo, quotaTracker, generator)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, quotaTracker)
	proposalHandler := handler.NewProposalHandler(proposalService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		proposalHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
