package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freightlink/profile-api/internal/config"
	"github.com/freightlink/profile-api/internal/handlers"
	"github.com/freightlink/profile-api/internal/logging"
	"github.com/freightlink/profile-api/internal/middleware"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Freightlink Profile API
// @version         1.0
// @description     API for the freightlink driver marketplace: driver profile normalization, job applications, interview scheduling, and driver verification. Raw backend records are reconciled into canonical profiles; statuses are derived server-side from the record sub-fields.

// @host      localhost:8080
// @BasePath  /v1

// @tag.name profile
// @tag.description Driver profile operations

// @tag.name applications
// @tag.description Job application operations

// @tag.name verification
// @tag.description Driver verification operations

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	// Initialize database connections
	config.InitMongoDB()
	config.InitRedis()

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router with middleware
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.Default(),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		v1.GET("/drivers/:id/profile", handlers.GetDriverProfile)
		v1.PUT("/drivers/:id/profile", handlers.UpdateDriverProfile)
		v1.POST("/drivers/:id/profile/submit", handlers.SubmitDriverProfile)

		v1.GET("/drivers/:id/verification", handlers.GetVerification)
		v1.POST("/drivers/:id/verification/payment", handlers.PayVerification)
		v1.POST("/drivers/:id/verification/documents", handlers.UploadVerificationDocument)

		v1.GET("/jobs/:jobId/applications", handlers.ListJobApplications)
		v1.POST("/jobs/:jobId/applications", handlers.ApplyToJob)
		v1.PUT("/applications/:id/decision", handlers.DecideApplication)
		v1.GET("/applications/:id/interview", handlers.GetInterviewState)
		v1.PUT("/applications/:id/interview", handlers.ScheduleInterview)

		v1.GET("/lookup/pincode/:pincode", handlers.LookupPincode)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}
