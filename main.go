package main

import (
	"log"
	"net/http"
	"os"

	"blog-cms/config"
	"blog-cms/handlers"
	"blog-cms/helper"
	"blog-cms/middleware"
	"blog-cms/repositories"
	"blog-cms/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger, err := config.NewLogger(os.Getenv("GIN_MODE"))
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Initialize database
	db := config.InitDB()

	// Request payload validation with translated messages
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := entranslations.RegisterDefaultTranslations(validate, translator); err != nil {
		logger.Fatalw("failed to register validator translations", "error", err)
	}
	httpHelper := &helper.HTTPHelper{Validate: validate, Translator: translator}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo)
	userService := services.NewUserService(userRepo)

	// Bootstrap admin account on an empty users table
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		if err := authService.EnsureAdmin(email, os.Getenv("ADMIN_PASSWORD")); err != nil {
			logger.Fatalw("failed to bootstrap admin user", "error", err)
		}
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper)
	userHandler := handlers.NewUserHandler(userService, httpHelper)

	// Setup router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	router.POST("/api/login", authHandler.Login)
	router.GET("/get-all-articles", articleHandler.GetAllArticles)
	router.GET("/get-article-data/:slug", articleHandler.GetArticleData)

	// Protected routes
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/verify-token", authHandler.VerifyToken)

		protected.POST("/create-article", articleHandler.CreateArticle)
		protected.PUT("/update-article/:id", articleHandler.UpdateArticle)
		protected.DELETE("/delete-article/:id", articleHandler.DeleteArticle)

		protected.GET("/get-all-users", userHandler.GetAllUsers)
		protected.POST("/create-user", userHandler.CreateUser)
		protected.PUT("/update-user/:id", userHandler.UpdateUser)
		protected.DELETE("/delete-user/:id", userHandler.DeleteUser)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Infow("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
