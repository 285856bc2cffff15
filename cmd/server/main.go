package main

import (
	"fmt"
	"log"

	"portfolio-api/internal/api/routes"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Create bootstrap admin if database is empty
	tokenService := services.NewTokenService(cfg)
	auditService := services.NewAuditService()
	authService := services.NewAuthService(cfg, tokenService, auditService)
	if err := authService.CreateDefaultAdmin(); err != nil {
		log.Printf("Warning: Failed to create default admin: %v", err)
	}

	// Seed sample content for local development
	if cfg.Seed.SampleData {
		if err := services.SeedSampleData(); err != nil {
			log.Printf("Warning: Failed to seed sample data: %v", err)
		}
	}

	// Set Gin mode
	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.New()
	r.Use(gin.Logger())

	// Setup routes
	routes.SetupRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "API endpoint not found"})
	})

	// Run server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting portfolio API server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
