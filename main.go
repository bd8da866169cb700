package main

import (
	"log"
	"net/http"
	"os"

	"toolbox-api/config"
	"toolbox-api/handlers"
	"toolbox-api/middleware"
	"toolbox-api/models"
	"toolbox-api/repositories"
	"toolbox-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()
	if err := models.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	toolRepo := repositories.NewToolRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	tagService := services.NewTagService(tagRepo, toolRepo)
	toolService := services.NewToolService(db, toolRepo, tagService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	toolHandler := handlers.NewToolHandler(toolService)
	tagHandler := handlers.NewTagHandler(tagService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Listing is public under the global scope; under the owner scope
		// it needs an authenticated user to scope by.
		if config.ListingScope == config.ListingGlobal {
			v1.GET("/tools", toolHandler.Index)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", authHandler.Me)
			protected.POST("/logout", authHandler.Logout)

			if config.ListingScope == config.ListingOwnerScoped {
				protected.GET("/tools", toolHandler.Index)
			}

			tools := protected.Group("/tools")
			{
				tools.POST("", toolHandler.Store)
				tools.POST("/bulk", toolHandler.BulkStore)
				tools.GET("/:id", toolHandler.Show)
				tools.PUT("/:id", toolHandler.Update)
				tools.PATCH("/:id", toolHandler.Update)
				tools.DELETE("/:id", toolHandler.Destroy)
			}

			protected.GET("/tags", tagHandler.Index)
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
