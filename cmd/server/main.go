package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-bed-backend/internal/config"
	"hospital-bed-backend/internal/database"
	"hospital-bed-backend/internal/handler"
	"hospital-bed-backend/internal/middleware"
	"hospital-bed-backend/internal/repository"
	"hospital-bed-backend/internal/service"
	"hospital-bed-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 4. Initialize repositories
	hospitalRepo := repository.NewHospitalRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	hospitalService := service.NewHospitalService(db, hospitalRepo, historyRepo, auditRepo)
	snapshotService := service.NewSnapshotService(hospitalRepo, historyRepo, auditRepo, cfg.Snapshot.Schedule)

	// Seed the admin account from configuration
	if err := authService.EnsureAdminUser(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// 6. Start daily snapshot job in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go snapshotService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	// 8. Setup Gin router
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "hospital-bed-backend",
		})
	})

	// Auth routes. Registration is admin-only so the user base stays managed.
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/register", middleware.AuthMiddleware(), middleware.RequireAdmin(), authHandler.Register)
	}

	// Hospital routes. Reads are public, writes require an admin token.
	api := r.Group("/api")
	{
		api.GET("/hospitals", hospitalHandler.ListHospitals)
		api.GET("/hospitals/stats", hospitalHandler.GetStats)
		api.GET("/hospitals/view", hospitalHandler.ViewHospitals)
		api.GET("/hospitals/:id/history", hospitalHandler.GetHistory)

		api.POST("/hospitals", middleware.AuthMiddleware(), middleware.RequireAdmin(), hospitalHandler.SubmitHospital)
		api.DELETE("/hospitals/:id", middleware.AuthMiddleware(), middleware.RequireAdmin(), hospitalHandler.DeleteHospital)
		api.POST("/snapshots/run", middleware.AuthMiddleware(), middleware.RequireAdmin(), snapshotHandler.RunSnapshot)
	}

	// Local deployment variant serves the static frontend from the same port
	if cfg.Server.ServeStaticAssets {
		r.Static("/app", cfg.Server.StaticDir)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel snapshot job context
	cancel()
	log.Println("Server exited")
}
