package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/wuchib/cbiu-website/internal/auth"
	"github.com/wuchib/cbiu-website/internal/config"
	"github.com/wuchib/cbiu-website/internal/database"
	"github.com/wuchib/cbiu-website/internal/handler"
	"github.com/wuchib/cbiu-website/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	// Swagger imports
	_ "github.com/wuchib/cbiu-website/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           cbiu-website API
// @version         1.0
// @description     Content backend for the personal blog/portfolio site.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	seedAdmin()

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/login", handler.LoginUser)
			authRoutes.GET("/me", auth.AuthMiddleware(), handler.GetMe)
		}

		// Public read routes
		apiV1.GET("/articles", handler.GetArticles)
		apiV1.GET("/articles/:slug", auth.OptionalAuthMiddleware(), handler.GetArticleBySlug)
		apiV1.GET("/article-categories", handler.GetArticleCategories)
		apiV1.GET("/tags", handler.GetTags)
		apiV1.GET("/projects", handler.GetProjects)
		apiV1.GET("/projects/:slug", handler.GetProjectBySlug)
		apiV1.GET("/share", handler.GetSharePage)

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			// Articles CRUD
			articles := adminRoutes.Group("/articles")
			{
				articles.GET("", handler.GetAdminArticles)
				articles.POST("", handler.CreateArticle)
				articles.PUT("/:id", handler.UpdateArticle)
				articles.DELETE("/:id", handler.DeleteArticle)
				articles.POST("/:id/publish", handler.TogglePublishArticle)
			}

			// Article categories CRUD
			articleCategories := adminRoutes.Group("/article-categories")
			{
				articleCategories.POST("", handler.CreateArticleCategory)
				articleCategories.PUT("/:id", handler.UpdateArticleCategory)
				articleCategories.DELETE("/:id", handler.DeleteArticleCategory)
			}

			// Share categories (with field schemas) and resources
			share := adminRoutes.Group("/share")
			{
				share.GET("/categories", handler.GetShareCategories)
				share.POST("/categories", handler.CreateShareCategory)
				share.PUT("/categories/:key", handler.UpdateShareCategory)
				share.DELETE("/categories/:key", handler.DeleteShareCategory)
				share.GET("/categories/:key/fields", handler.RenderResourceFields)

				share.POST("/resources", handler.CreateShareResource)
				share.PUT("/resources/:id", handler.UpdateShareResource)
				share.DELETE("/resources/:id", handler.DeleteShareResource)
			}

			// Projects CRUD
			projects := adminRoutes.Group("/projects")
			{
				projects.POST("", handler.CreateProject)
				projects.PUT("/:id", handler.UpdateProject)
				projects.DELETE("/:id", handler.DeleteProject)
			}
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(addr))
}

// seedAdmin creates the admin account from configuration if it is missing.
func seedAdmin() {
	if config.AppConfig.AdminEmail == "" || config.AppConfig.AdminPassword == "" {
		log.Println("Warning: ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", config.AppConfig.AdminEmail).First(&existing).Error; err == nil {
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Name:         "admin",
		Email:        config.AppConfig.AdminEmail,
		PasswordHash: string(hashedPassword),
		Role:         "admin",
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Println("Admin user seeded.")
}
