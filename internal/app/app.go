package app

import (
	"context"
	"errors"
	"fmt"

	"skillswap_backend/database"
	"skillswap_backend/internal/config"
	"skillswap_backend/internal/email"
	"skillswap_backend/internal/handlers"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/routes"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/storage"
	"skillswap_backend/internal/validator"
	"skillswap_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	worker := workers.NewSwapWorker(gormDB, repositories.NewSwapRepository(), repositories.NewRefreshTokenRepository())
	worker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		UseSSL:     cfg.Storage.UseSSL,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage) *services.ServiceContainer {
	var emailService email.Provider
	smtpProvider, err := email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
	})
	if err != nil {
		logger.Warn("SMTP not configured, email notifications disabled", "error", err)
		emailService = &MockEmailProvider{}
	} else {
		emailService = smtpProvider
	}

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	skillRepo := repositories.NewSkillRepository()
	swapRepo := repositories.NewSwapRepository()
	ratingRepo := repositories.NewRatingRepository()

	authService := services.NewAuthService(userRepo, profileRepo, refreshTokenRepo)
	profileService := services.NewProfileService(profileRepo, ratingRepo)
	skillService := services.NewSkillService(skillRepo)
	swapService := services.NewSwapService(swapRepo, userRepo, profileRepo, ratingRepo, emailService)
	ratingService := services.NewRatingService(ratingRepo, swapRepo)
	searchService := services.NewSearchService(profileRepo, skillRepo, ratingRepo)
	adminService := services.NewAdminService(userRepo, swapRepo, ratingRepo, ratingService)
	uploadService := services.NewUploadService(storageInstance, profileRepo)

	return &services.ServiceContainer{
		AuthService:    authService,
		ProfileService: profileService,
		SkillService:   skillService,
		SwapService:    swapService,
		RatingService:  ratingService,
		SearchService:  searchService,
		AdminService:   adminService,
		UploadService:  uploadService,
		EmailService:   emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, services.ProfileService),
		SkillHandler:   handlers.NewSkillHandler(baseHandler, services.SkillService),
		SwapHandler:    handlers.NewSwapHandler(baseHandler, services.SwapService),
		RatingHandler:  handlers.NewRatingHandler(baseHandler, services.RatingService),
		SearchHandler:  handlers.NewSearchHandler(baseHandler, services.SearchService),
		AdminHandler:   handlers.NewAdminHandler(baseHandler, services.AdminService),
		UploadHandler:  handlers.NewUploadHandler(baseHandler, services.UploadService),
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

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var adminUser models.User
		result := tx.Where("email = ?", adminEmail).First(&adminUser)

		if result.Error == nil {
			logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		logger.Warn("No admin user found, creating first admin", "email", adminEmail)

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		newAdmin := &models.User{
			Email:        adminEmail,
			PasswordHash: string(hashedPassword),
			Role:         models.UserRoleAdmin,
			Status:       models.UserStatusActive,
		}
		if err := tx.Create(newAdmin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		adminProfile := &models.Profile{
			UserID:   newAdmin.ID,
			Name:     "Platform Administration",
			IsPublic: false,
		}
		if err := tx.Create(adminProfile).Error; err != nil {
			return fmt.Errorf("failed to create admin profile: %w", err)
		}

		logger.Info("Created first admin user and profile", "email", adminEmail)
		return nil
	})
}
