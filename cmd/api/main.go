package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justsurfingit/applytrack/internal/config"
	"github.com/justsurfingit/applytrack/internal/database"
	"github.com/justsurfingit/applytrack/internal/handlers"
	"github.com/justsurfingit/applytrack/internal/logger"
	"github.com/justsurfingit/applytrack/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zlog.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Fatalw("failed to connect to database", "error", err)
	}

	// 3. Initialize Services
	authService := services.NewAuthService(db, zlog, cfg.SessionTTL)
	applicationService := services.NewApplicationService(db, zlog)
	sectionService := services.NewSectionService(db, zlog)

	// 4. Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService, zlog)
	applicationHandler := handlers.NewApplicationHandler(applicationService, zlog)
	sectionHandler := handlers.NewSectionHandler(sectionService, zlog)

	// 5. Router & Routes
	r := handlers.NewRouter(zlog, authService, authHandler, applicationHandler, sectionHandler)

	zlog.Infow("server starting", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		zlog.Fatalw("server failed to start", "error", err)
	}
}
