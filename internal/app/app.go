package app

import (
	"database/sql"
	"fmt"

	"venturenest_backend/internal/config"
	"venturenest_backend/internal/database"
	"venturenest_backend/internal/email"
	"venturenest_backend/internal/handlers"
	"venturenest_backend/internal/logger"
	"venturenest_backend/internal/middleware"
	"venturenest_backend/internal/routes"
	"venturenest_backend/internal/services"
	"venturenest_backend/internal/storage"
	"venturenest_backend/internal/validator"
	"venturenest_backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB, sqlDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	wsManager := ws.NewManager()
	go wsManager.Run()
	wsHandler := ws.NewHandler(wsManager)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance, wsManager)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	publisher services.RealtimePublisher,
) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		smtp, err := email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
			FromName: cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = smtp
		logger.Info("Email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("Email delivery disabled, using mock provider")
		emailProvider = &MockEmailProvider{}
	}

	return services.NewServiceContainer(gormDB, storageInstance, emailProvider, publisher)
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		HealthHandler:        handlers.NewHealthHandler(baseHandler),
		AuthHandler:          handlers.NewAuthHandler(baseHandler, container.Auth),
		ProfileHandler:       handlers.NewProfileHandler(baseHandler, container.Profile),
		ListingHandler:       handlers.NewListingHandler(baseHandler, container.Listing),
		DocumentHandler:      handlers.NewDocumentHandler(baseHandler, container.Document),
		AccessRequestHandler: handlers.NewAccessRequestHandler(baseHandler, container.AccessRequest),
		NotificationHandler:  handlers.NewNotificationHandler(baseHandler, container.Notification),
		FileHandler:          handlers.NewFileHandler(baseHandler, container.Document),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
