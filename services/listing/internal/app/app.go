package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/cache"
	"github.com/Chopaholic/MotorAdverts/pkg/config"
	"github.com/Chopaholic/MotorAdverts/pkg/jwt"
	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/pkg/middleware"
	"github.com/Chopaholic/MotorAdverts/pkg/queue"
	"github.com/Chopaholic/MotorAdverts/pkg/s3"
	listingHTTP "github.com/Chopaholic/MotorAdverts/services/listing/internal/controller/http"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/repo/draftstore"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/repo/persistent"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/staging"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	denylist := cache.NewTokenDenylist(redisClient)

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to connect to object storage: %v", err)
		panic(err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	stagingStore, err := staging.NewStore(cfg.UploadStagingDir)
	if err != nil {
		log.Error("Failed to create staging dir: %v", err)
		panic(err)
	}

	// Initialize repositories
	listingRepo := persistent.NewListingRepository(db)
	draftStore := draftstore.NewDraftStore(redisClient)

	// Initialize use cases
	listingUseCase := usecase.NewListingUseCase(listingRepo)
	draftUseCase := usecase.NewDraftUseCase(draftStore, listingRepo, stagingStore, s3Client, queueClient, log)

	// Initialize HTTP handlers
	listingHandler := listingHTTP.NewListingHandler(listingUseCase)
	draftHandler := listingHTTP.NewDraftHandler(draftUseCase)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.GET("/listings/:id", listingHandler.GetListing)
		api.GET("/categories", listingHandler.GetCategories)
	}

	drafts := api.Group("/drafts/me")
	drafts.Use(middleware.AuthMiddlewareWithDenylist(jwtService, denylist))

	{
		drafts.GET("", draftHandler.GetDraft)
		drafts.PUT("/vehicle", draftHandler.SaveVehicle)
		drafts.PUT("/contact", draftHandler.SaveContact)
		drafts.POST("/advance", draftHandler.Advance)
		drafts.POST("/back", draftHandler.Back)
		drafts.POST("/photos", draftHandler.AddPhotos)
		drafts.POST("/photos/reorder", draftHandler.ReorderPhoto)
		drafts.POST("/photos/cover", draftHandler.SetCover)
		drafts.POST("/publish", draftHandler.Publish)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Listing service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down listing service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Listing service exited")
}
