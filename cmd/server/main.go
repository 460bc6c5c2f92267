package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"streamify/backend/internal/auth"
	"streamify/backend/internal/chat"
	"streamify/backend/internal/config"
	"streamify/backend/internal/database"
	"streamify/backend/internal/handler"
	"streamify/backend/internal/hub"
	"streamify/backend/internal/middleware"
	"streamify/backend/internal/recommend"
	"streamify/backend/internal/social"
	"streamify/backend/internal/store"

	// Swagger imports
	_ "streamify/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Streamify API
// @version         1.0
// @description     Backend for the Streamify language-exchange platform.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey CookieAuth
// @in cookie
// @name jwt
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	chatClient, err := chat.New(cfg.StreamAPIKey, cfg.StreamAPISecret)
	if err != nil {
		logger.Fatal("failed to create chat client", zap.Error(err))
	}

	users := store.NewUserStore(db)
	requests := store.NewFriendRequestStore(db)
	socialService := social.NewService(db, users, requests)
	recommendService := recommend.NewService(users)
	notificationHub := hub.NewHub()

	authHandler := &handler.AuthHandler{Users: users, Chat: chatClient, JWTSecret: cfg.JWTSecret, Log: logger}
	userHandler := &handler.UserHandler{Recommend: recommendService, Log: logger}
	friendHandler := &handler.FriendHandler{Social: socialService, Hub: notificationHub, Log: logger}
	chatHandler := &handler.ChatHandler{Chat: chatClient, Log: logger}
	notificationHandler := &handler.NotificationHandler{Hub: notificationHub}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	loginLimiter := middleware.NewIPRateLimiter(10, time.Minute, 5, 5*time.Minute)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/signup", loginLimiter.Handler(), authHandler.Signup)
			authRoutes.POST("/login", loginLimiter.Handler(), authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.POST("/onboarding", auth.Middleware(cfg.JWTSecret), authHandler.Onboarding)
			authRoutes.GET("/me", auth.Middleware(cfg.JWTSecret), authHandler.Me)
		}

		// Social graph routes (protected)
		protected := apiV1.Group("")
		protected.Use(auth.Middleware(cfg.JWTSecret))
		{
			protected.GET("/users", userHandler.GetRecommendedUsers)
			protected.GET("/friends", friendHandler.GetMyFriends)
			protected.POST("/friend-request/:id", friendHandler.SendFriendRequest)
			protected.PUT("/friend-request/:id/accept", friendHandler.AcceptFriendRequest)
			protected.GET("/friend-requests", friendHandler.GetFriendRequests)
			protected.GET("/outgoing-friend-requests", friendHandler.GetOutgoingFriendRequests)

			protected.GET("/chat/token", chatHandler.GetToken)
			protected.GET("/notifications/stream", notificationHandler.Stream)
		}
	}

	logger.Info("server is running", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
