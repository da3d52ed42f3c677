package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard_backend/database"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
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

	ginRouter := SetupRouter(cfg, gormDB)

	// Background maintenance
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	jobWorker := workers.NewJobWorker(repositories.NewJobRepository(gormDB))
	jobWorker.Start(workerCtx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full gin engine. Tests call it directly against a
// test database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	tokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	savedJobRepo := repositories.NewSavedJobRepository(gormDB)
	companyRepo := repositories.NewCompanyRepository(gormDB)
	categoryRepo := repositories.NewCategoryRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, tokenRepo),
		JobService:         services.NewJobService(jobRepo, companyRepo, userRepo),
		SearchService:      services.NewSearchService(jobRepo, cfg.Search.MaxResults, cfg.Search.SalaryCeiling),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo),
		SavedJobService:    services.NewSavedJobService(savedJobRepo, jobRepo),
		CompanyService:     services.NewCompanyService(companyRepo, categoryRepo),
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	v := validator.New()
	base := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(base, sc.AuthService),
		SearchHandler:      handlers.NewSearchHandler(base, sc.SearchService),
		JobHandler:         handlers.NewJobHandler(base, sc.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(base, sc.ApplicationService),
		SavedJobHandler:    handlers.NewSavedJobHandler(base, sc.SavedJobService),
		CompanyHandler:     handlers.NewCompanyHandler(base, sc.CompanyService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
	)
	return ginRouter
}
