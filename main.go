package main

import (
	"log"
	"net/http"

	"devconnect/config"
	"devconnect/handlers"
	"devconnect/helper"
	"devconnect/logger"
	"devconnect/middleware"
	"devconnect/repositories"
	"devconnect/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	appLogger := logger.InitLogger(cfg.Log)
	defer appLogger.Sync()

	// Initialize database
	db := config.InitDB(cfg.Database)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	responseRepo := repositories.NewResponseRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWT)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo)
	responseService := services.NewResponseService(responseRepo, postRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper, cfg.JWT)
	userHandler := handlers.NewUserHandler(userService, httpHelper, cfg.Uploads)
	postHandler := handlers.NewPostHandler(postService, httpHelper)
	responseHandler := handlers.NewResponseHandler(responseService, httpHelper)

	// Setup router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(logger.RequestLogger())
	router.Use(logger.Recovery())

	// CORS: the session rides a cookie, so credentials must be allowed
	// and the origin pinned.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded avatars are served as static files
	router.Static("/uploads", cfg.Uploads.Dir)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/profile", middleware.AuthMiddleware(cfg.JWT), authHandler.GetProfile)

		// Users: reads are public, mutations require the caller to own
		// the addressed profile
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetUsers)
			users.GET("/:id", userHandler.GetUser)

			protected := users.Group("")
			protected.Use(middleware.AuthMiddleware(cfg.JWT))
			{
				protected.PUT("/:id", userHandler.UpdateProfile)
				protected.POST("/:id/portfolio", userHandler.AddProject)
				protected.PUT("/:id/portfolio/:projectId", userHandler.UpdateProject)
				protected.DELETE("/:id/portfolio/:projectId", userHandler.DeleteProject)
				protected.POST("/:id/portfolio/deleteByTitle", userHandler.DeleteProjectsByTitle)
				protected.POST("/:id/avatar", userHandler.UploadAvatar)
			}
		}

		// Posts: the feed is public, everything else requires auth
		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.GetPosts)

			protected := posts.Group("")
			protected.Use(middleware.AuthMiddleware(cfg.JWT))
			{
				protected.POST("", postHandler.CreatePost)
				protected.PUT("/:id", postHandler.UpdatePost)
				protected.DELETE("/:id", postHandler.DeletePost)
				protected.POST("/:id/like", postHandler.LikePost)
				protected.DELETE("/:id/like", postHandler.UnlikePost)
			}
		}

		// Job responses and notifications
		responses := api.Group("/responses")
		{
			responses.POST("", responseHandler.CreateResponse)
			responses.GET("/for-user/:userId", responseHandler.GetResponsesForUser)
			responses.GET("/notifications/:userId", responseHandler.GetNotifications)
		}
	}

	// Start server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
