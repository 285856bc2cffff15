package routes

import (
	"portfolio-api/internal/api/handlers"
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/config"
	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// Initialize services
	tokenService := services.NewTokenService(cfg)
	auditService := services.NewAuditService()
	authService := services.NewAuthService(cfg, tokenService, auditService)
	userService := services.NewUserService(authService, auditService)
	blogService := services.NewBlogService()
	skillService := services.NewSkillService()
	projectService := services.NewProjectService()
	educationService := services.NewEducationService()
	experienceService := services.NewExperienceService()
	interestService := services.NewInterestService()
	portfolioService := services.NewPortfolioService()
	messageService := services.NewMessageService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, auditService)
	adminUserHandler := handlers.NewAdminUserHandler(userService)
	blogHandler := handlers.NewBlogHandler(blogService)
	skillHandler := handlers.NewSkillHandler(skillService)
	projectHandler := handlers.NewProjectHandler(projectService)
	educationHandler := handlers.NewEducationHandler(educationService)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	interestHandler := handlers.NewInterestHandler(interestService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	contactHandler := handlers.NewContactHandler(messageService, cfg)

	// Middleware
	release := cfg.IsRelease()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	r.Use(middleware.Recovery(release))
	r.Use(middleware.ErrorHandler(release))

	api := r.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"name":    "Portfolio API",
				"version": "1.0",
				"endpoints": gin.H{
					"auth":       "/api/auth",
					"blog":       "/api/blog/posts",
					"skills":     "/api/skills",
					"projects":   "/api/projects",
					"education":  "/api/education",
					"experience": "/api/experience",
					"interests":  "/api/interests",
					"summary":    "/api/summary",
					"contact":    "/api/contact",
				},
			})
		})

		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Portfolio API is running",
			})
		})

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Public content routes
		blog := api.Group("/blog")
		{
			blog.GET("/posts", middleware.OptionalAuth(tokenService), blogHandler.List)
			blog.GET("/posts/:id", blogHandler.Get)
			blog.GET("/posts/slug/:slug", blogHandler.GetBySlug)
			blog.GET("/statuses", blogHandler.Statuses)
			blog.POST("/posts/:id/like", blogHandler.Like)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.List)
			skills.GET("/:id", skillHandler.Get)
			skills.GET("/categories", skillHandler.Categories)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/:id", projectHandler.Get)
			projects.GET("/statuses", projectHandler.Statuses)
		}

		education := api.Group("/education")
		{
			education.GET("", educationHandler.List)
			education.GET("/:id", educationHandler.Get)
		}

		experience := api.Group("/experience")
		{
			experience.GET("", experienceHandler.List)
			experience.GET("/:id", experienceHandler.Get)
		}

		interests := api.Group("/interests")
		{
			interests.GET("", interestHandler.List)
			interests.GET("/:id", interestHandler.Get)
			interests.GET("/categories", interestHandler.Categories)
		}

		api.GET("/summary", portfolioHandler.Summary)

		// Contact form (public submission) and contact card
		api.POST("/contact", contactHandler.Submit)
		api.GET("/contact/info", contactHandler.Info)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokenService))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/auth/validate", authHandler.ValidateToken)
		protected.POST("/auth/change-password", authHandler.ChangePassword)

		// Content management (admin and super admin)
		manage := protected.Group("")
		manage.Use(middleware.RequireRole(models.ManagementRoles()...))
		{
			manage.POST("/blog/posts", blogHandler.Create)
			manage.PUT("/blog/posts/:id", blogHandler.Update)
			manage.DELETE("/blog/posts/:id", blogHandler.Delete)
			manage.GET("/blog/stats", blogHandler.Stats)

			manage.POST("/skills", skillHandler.Create)
			manage.PUT("/skills/:id", skillHandler.Update)
			manage.DELETE("/skills/:id", skillHandler.Delete)
			manage.GET("/skills/stats", skillHandler.Stats)

			manage.POST("/projects", projectHandler.Create)
			manage.PUT("/projects/:id", projectHandler.Update)
			manage.DELETE("/projects/:id", projectHandler.Delete)

			manage.POST("/education", educationHandler.Create)
			manage.PUT("/education/:id", educationHandler.Update)
			manage.DELETE("/education/:id", educationHandler.Delete)

			manage.POST("/experience", experienceHandler.Create)
			manage.PUT("/experience/:id", experienceHandler.Update)
			manage.DELETE("/experience/:id", experienceHandler.Delete)

			manage.POST("/interests", interestHandler.Create)
			manage.PUT("/interests/:id", interestHandler.Update)
			manage.DELETE("/interests/:id", interestHandler.Delete)

			manage.GET("/messages", contactHandler.List)
			manage.GET("/messages/stats", contactHandler.Stats)
			manage.GET("/messages/:id", contactHandler.Get)
			manage.PUT("/messages/:id/status", contactHandler.UpdateStatus)
			manage.DELETE("/messages/:id", contactHandler.Delete)
		}

		// User management (super admin only)
		users := protected.Group("/users")
		users.Use(middleware.RequireRole(models.RoleSuperAdmin))
		{
			users.GET("", adminUserHandler.List)
			users.GET("/:id", adminUserHandler.Get)
			users.POST("", adminUserHandler.Create)
			users.PUT("/:id", adminUserHandler.Update)
			users.DELETE("/:id", adminUserHandler.Delete)
		}
	}
}
