package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hidr4lisk/experimento/internal/config"
	"github.com/hidr4lisk/experimento/internal/handler"
	"github.com/hidr4lisk/experimento/internal/repository"
	"github.com/hidr4lisk/experimento/internal/service"
	"github.com/hidr4lisk/experimento/pkg/holidays"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetServerConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Foreign key enforcement must be switched on per connection in SQLite.
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		logrus.Infof("Warning: Failed to enable foreign keys: %v", err)
	}

	agentRepo, err := repository.NewGormAgentRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create agent repository")
	}

	recordRepo, err := repository.NewGormRecordRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create record repository")
	}

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
	}

	// Holiday provider is pure per year range, so it is safe to memoize
	// for the process lifetime.
	holidayProvider, err := holidays.NewProvider(cfg.HolidayJurisdiction)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create holiday provider")
	}
	cachedProvider := holidays.NewCached(holidayProvider)

	calendarService := service.NewCalendarService(cachedProvider)
	availabilityService := service.NewAvailabilityService(cachedProvider)
	agentService := service.NewAgentService(agentRepo, recordRepo, calendarService, availabilityService)
	recordService := service.NewRecordService(recordRepo, agentRepo)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret)

	if err := authService.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logrus.Infof("Warning: Failed to initialize admin: %v", err)
	} else if cfg.AdminUsername != "" {
		logrus.Infof("Admin initialized with username: %s", cfg.AdminUsername)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Request logging middleware.
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logrus.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.OriginalURL(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		}).Info("request")
		return err
	})

	apiHandler := handler.NewHandler(agentService, recordService, authService, db)
	apiHandler.RegisterRoutes(app)

	go func() {
		logrus.Infof("Listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logrus.Fatal("Server error:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	logrus.Info("Server started. Press Ctrl+C to stop.")
	<-stop

	if err := app.Shutdown(); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}
