package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shiftline/roster-backend/internal/config"
	"github.com/shiftline/roster-backend/internal/database"
	"github.com/shiftline/roster-backend/internal/handlers"
	"github.com/shiftline/roster-backend/internal/middleware"
	"github.com/shiftline/roster-backend/internal/models"
	"github.com/shiftline/roster-backend/internal/services"
	"github.com/shiftline/roster-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Shiftline Roster Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	profileRepository := database.NewProfileRepository(db)
	availabilityRepository := database.NewAvailabilityRepository(db)
	sectionRepository := database.NewSectionRepository(db)
	rosterVersionRepository := database.NewRosterVersionRepository(db)
	rosterShiftRepository := database.NewRosterShiftRepository(db)
	shiftRepository := database.NewShiftRepository(db)

	employeeService := services.NewEmployeeService(profileRepository, sectionRepository)
	rosterService := services.NewRosterService(
		rosterVersionRepository,
		rosterShiftRepository,
		availabilityRepository,
	)
	logger.Info("Services initialized")

	// Initialize handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityRepository)
	sectionHandler := handlers.NewSectionHandler(sectionRepository)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	shiftHandler := handlers.NewShiftHandler(shiftRepository)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	manager := string(models.RoleManager)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(jwtService))
	{
		// Own profile
		v1.GET("/profile", employeeHandler.GetMe)

		// Employee directory (manager manages, everyone reads)
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", middleware.RequireRole(manager), employeeHandler.UpdateEmployee)
			employees.PUT("/:id/section", middleware.RequireRole(manager), employeeHandler.AssignSection)
		}

		// Availability calendar
		availability := v1.Group("/availability")
		{
			availability.GET("", availabilityHandler.GetAvailability)
			availability.GET("/week", middleware.RequireRole(manager), availabilityHandler.GetWeekAvailability)
			availability.POST("", availabilityHandler.CreateAvailability)
			availability.PUT("/:id", availabilityHandler.UpdateAvailability)
			availability.DELETE("/:id", availabilityHandler.DeleteAvailability)
		}

		// Sections
		sections := v1.Group("/sections")
		{
			sections.GET("", sectionHandler.ListSections)
			sections.POST("", middleware.RequireRole(manager), sectionHandler.CreateSection)
			sections.PUT("/:id", middleware.RequireRole(manager), sectionHandler.RenameSection)
			sections.DELETE("/:id", middleware.RequireRole(manager), sectionHandler.DeleteSection)
		}

		// Weekly roster versions and their shifts
		roster := v1.Group("/roster")
		{
			roster.GET("", rosterHandler.GetWeek)
			roster.POST("/versions", middleware.RequireRole(manager), rosterHandler.CreateVersion)
			roster.POST("/versions/:id/copy", middleware.RequireRole(manager), rosterHandler.CopyVersion)
			roster.GET("/versions/:id/shifts", rosterHandler.ListShifts)
			roster.POST("/versions/:id/shifts", middleware.RequireRole(manager), rosterHandler.AddShift)
			roster.DELETE("/shifts/:id", middleware.RequireRole(manager), rosterHandler.RemoveShift)
		}

		// Legacy version-less shift board
		shifts := v1.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.POST("", middleware.RequireRole(manager), shiftHandler.CreateShift)
			shifts.DELETE("/:id", middleware.RequireRole(manager), shiftHandler.DeleteShift)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		if userCtx, exists := middleware.GetUserContext(c); exists {
			fields["user_id"] = userCtx.UserID
			fields["role"] = userCtx.Role
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
