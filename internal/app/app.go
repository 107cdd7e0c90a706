package app

import (
	"errors"
	"fmt"

	"jobboard_backend/database"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer, userRepo := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()

	loginLimiter := middleware.NewLoginRateLimiter(cfg.Security.LoginRatePerMin, cfg.Security.LoginBurst)
	routes.RegisterRoutes(ginRouter, appHandlers, userRepo, loginLimiter, gormDB)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) (*services.ServiceContainer, repositories.UserRepository) {
	var emailService email.Provider
	if cfg.Email.Enabled {
		emailService = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("Email disabled in config, using mock provider")
		emailService = &email.MockProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	proposalRepo := repositories.NewProposalRepository(gormDB)
	flagRepo := repositories.NewFlagRepository(gormDB)
	auditRepo := repositories.NewAuditRepository(gormDB)
	ticketRepo := repositories.NewTicketRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	statsRepo := repositories.NewStatsRepository(gormDB)

	auditService := services.NewAuditService(auditRepo)
	authService := services.NewAuthService(userRepo, refreshTokenRepo)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo, proposalRepo, paymentRepo)
	proposalService := services.NewProposalService(proposalRepo, jobRepo)
	moderationService := services.NewModerationService(jobRepo, flagRepo, auditService)
	adminService := services.NewAdminService(userRepo, statsRepo, auditService, emailService)
	ticketService := services.NewTicketService(ticketRepo, userRepo, auditService, emailService)

	return &services.ServiceContainer{
		AuthService:       authService,
		UserService:       userService,
		JobService:        jobService,
		ProposalService:   proposalService,
		ModerationService: moderationService,
		AdminService:      adminService,
		TicketService:     ticketService,
		AuditService:      auditService,
		EmailService:      emailService,
	}, userRepo
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:       handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:       handlers.NewUserHandler(baseHandler, services.UserService),
		JobHandler:        handlers.NewJobHandler(baseHandler, services.JobService, services.ProposalService),
		ModerationHandler: handlers.NewModerationHandler(baseHandler, services.ModerationService),
		TicketHandler:     handlers.NewTicketHandler(baseHandler, services.TicketService),
		AdminHandler:      handlers.NewAdminHandler(baseHandler, services.AdminService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin создает первого админа из конфига, если его еще нет.
// Без заданных учетных данных просто пропускается.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		DisplayName:  "Platform Admin",
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)
	return nil
}
