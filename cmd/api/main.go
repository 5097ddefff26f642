package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/meetapp/meetapp-backend/internal/config"
	"github.com/meetapp/meetapp-backend/internal/handler"
	"github.com/meetapp/meetapp-backend/internal/middleware"
	"github.com/meetapp/meetapp-backend/internal/repository"
	"github.com/meetapp/meetapp-backend/internal/service"
	"github.com/meetapp/meetapp-backend/pkg/database"
	"github.com/meetapp/meetapp-backend/pkg/email"
	"github.com/meetapp/meetapp-backend/pkg/qrcode"
	"github.com/meetapp/meetapp-backend/pkg/storage"
	"github.com/meetapp/meetapp-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)
	meetupRepo := repository.NewMeetupRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Banner storage
	bannerStorage, err := storage.NewS3Storage(cfg.Storage)
	if err != nil {
		zapLogger.Fatal("storage init failed", zap.Error(err))
	}

	// Email notifier; no-op when no provider is configured
	var notifier service.Notifier = service.NoopNotifier{}
	if cfg.Email.APIKey != "" {
		notifier = email.NewEmailService(cfg.Email, zapLogger)
	}

	// Services
	authService := service.NewAuthService(userRepo, notifier, zapLogger)
	userService := service.NewUserService(userRepo)
	fileService := service.NewFileService(fileRepo, bannerStorage)
	meetupService := service.NewMeetupService(meetupRepo, fileRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, meetupRepo, notifier, zapLogger)

	qrService := qrcode.NewQRService(cfg.FrontendURL)
	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	fileHandler := handler.NewFileHandler(fileService, validator)
	meetupHandler := handler.NewMeetupHandler(meetupService, qrService, validator)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, validator)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Public routes
	app.Post("/users", authHandler.Register)
	app.Post("/sessions", authHandler.Login)

	// Protected routes
	app.Use(middleware.AuthMiddleware())
	{
		app.Put("/users", userHandler.Update)

		meetups := app.Group("/meetups")
		meetups.Post("/", meetupHandler.Store)
		meetups.Get("/", meetupHandler.Index)
		meetups.Get("/:id", meetupHandler.Show)
		meetups.Get("/:id/qrcode", meetupHandler.QRCode)
		meetups.Put("/:id", meetupHandler.Update)
		meetups.Delete("/:id", meetupHandler.Delete)

		attendances := app.Group("/attendances")
		attendances.Post("/", attendanceHandler.Store)
		attendances.Get("/", attendanceHandler.Index)
		attendances.Delete("/:id", attendanceHandler.Delete)

		app.Post("/files", fileHandler.Store)
	}

	zapLogger.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
