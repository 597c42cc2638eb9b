package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/campushq/placement-api/internal/config"
	"github.com/campushq/placement-api/internal/database"
	"github.com/campushq/placement-api/internal/handler"
	"github.com/campushq/placement-api/internal/middleware"
	"github.com/campushq/placement-api/internal/models"
	"github.com/campushq/placement-api/internal/repository"
	"github.com/campushq/placement-api/internal/router"
	"github.com/campushq/placement-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectMySQL(cfg.DatabaseDSN, cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access connection pool: %v", err)
	}
	defer sqlDB.Close()

	err = db.AutoMigrate(
		&models.Branch{}, &models.Skill{}, &models.Company{}, &models.Student{},
		&models.Job{}, &models.Application{}, &models.Offer{}, &models.PlacementOfficer{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	officerRepo := repository.NewOfficerRepository(db)
	lookupRepo := repository.NewLookupRepository(db)
	jobRepo := repository.NewJobRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	bootstrap := service.BootstrapAdmin{
		Email:    cfg.BootstrapAdminEmail,
		Password: cfg.BootstrapAdminPassword,
	}

	authService := service.NewAuthService(studentRepo, officerRepo, validate, cfg.JWTSecret, cfg.TokenTTL, bootstrap, logger)
	lookupService := service.NewLookupService(lookupRepo)
	jobService := service.NewJobService(jobRepo, studentRepo, applicationRepo, logger)
	applicationService := service.NewApplicationService(applicationRepo, studentRepo, jobRepo, validate, logger)
	adminService := service.NewAdminService(studentRepo, statsRepo, redisClient, cfg.StatsCacheTTL, logger)
	studentService := service.NewStudentService(studentRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, logger)
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:        handler.NewAuthHandler(authService, logger),
		LookupHandler:      handler.NewLookupHandler(lookupService, logger),
		JobHandler:         handler.NewJobHandler(jobService, logger),
		ApplicationHandler: handler.NewApplicationHandler(applicationService, logger),
		AdminHandler:       handler.NewAdminHandler(adminService, logger),
		StudentHandler:     handler.NewStudentHandler(studentService, logger),
		JWTMiddleware:      middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
