package app

import (
	"fmt"

	"flexygig/database"
	"flexygig/internal/cache"
	"flexygig/internal/config"
	"flexygig/internal/email"
	"flexygig/internal/handlers"
	"flexygig/internal/logger"
	"flexygig/internal/middleware"
	"flexygig/internal/repositories"
	"flexygig/internal/routes"
	"flexygig/internal/services"
	"flexygig/internal/validator"
	"flexygig/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	mailer := workers.NewMailer(newEmailProvider(cfg), 64)
	defer mailer.Stop()

	ginRouter := SetupRouter(cfg, gormDB, mailer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, mailer services.EmailEnqueuer) *gin.Engine {
	redisCache := cache.New(cfg)

	serviceContainer := initializeServices(redisCache, mailer)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, emails will be logged instead of sent")
		return &MockEmailProvider{}
	}
	return email.NewSMTPProvider(cfg)
}

func initializeServices(redisCache *cache.Cache, mailer services.EmailEnqueuer) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	workerRepo := repositories.NewWorkerRepository()
	businessRepo := repositories.NewBusinessRepository()
	pendingRepo := repositories.NewPendingUserRepository()
	tokenRepo := repositories.NewTokenRepository()
	tagRepo := repositories.NewTagRepository()
	messageRepo := repositories.NewMessageRepository()
	searchRepo := repositories.NewSearchRepository()

	return &services.ServiceContainer{
		Auth:          services.NewAuthService(userRepo, workerRepo, businessRepo, pendingRepo, tokenRepo, tagRepo, mailer),
		User:          services.NewUserService(userRepo, workerRepo, businessRepo),
		WorkerProfile: services.NewWorkerProfileService(workerRepo, tagRepo),
		Tag:           services.NewTagService(tagRepo, workerRepo, redisCache),
		Message:       services.NewMessageService(messageRepo, userRepo),
		Search:        services.NewSearchService(searchRepo, workerRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		Auth:          handlers.NewAuthHandler(baseHandler, container.Auth, container.User),
		User:          handlers.NewUserHandler(baseHandler, container.User),
		WorkerProfile: handlers.NewWorkerProfileHandler(baseHandler, container.WorkerProfile),
		Tag:           handlers.NewTagHandler(baseHandler, container.Tag),
		Message:       handlers.NewMessageHandler(baseHandler, container.Message),
		Search:        handlers.NewSearchHandler(baseHandler, container.Search),
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
