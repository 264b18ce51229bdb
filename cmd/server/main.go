package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/meselghea/teledoc-app/docs"
	"github.com/meselghea/teledoc-app/internal/auth"
	"github.com/meselghea/teledoc-app/internal/cache"
	"github.com/meselghea/teledoc-app/internal/config"
	"github.com/meselghea/teledoc-app/internal/db"
	"github.com/meselghea/teledoc-app/internal/handler"
	"github.com/meselghea/teledoc-app/internal/model"
	"github.com/meselghea/teledoc-app/internal/repository"
	"github.com/meselghea/teledoc-app/internal/router"
	"github.com/meselghea/teledoc-app/internal/service"
)

// @title Teledoc Appointment API
// @version 1.0
// @description Healthcare appointment API with patient/doctor profiles, appointment status decisions, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Info().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Appointment{},
			&model.AppointmentStatus{},
			&model.Doctor{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn().Err(err).Msg("drop table (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Doctor{},
		&model.AppointmentStatus{},
		&model.Appointment{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	doctorRepo := repository.NewDoctorRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	statusRepo := repository.NewStatusRepository(gormDB)

	// The status enumeration must exist before any appointment is written.
	if err := statusRepo.EnsureDefaults(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("seed status lookup")
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, doctorRepo, jwtService, tokenStore)
	profileService := service.NewProfileService(userRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo, statusRepo, cacheClient)
	doctorService := service.NewDoctorService(doctorRepo)
	mediaService := service.NewMediaService(cfg.ImageKitPrivateKey)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	mediaHandler := handler.NewMediaHandler(mediaService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		profileHandler,
		appointmentHandler,
		doctorHandler,
		mediaHandler,
	)

	// Swagger host defaults to localhost:<port>; SWAGGER_HOST overrides it
	// behind a proxy.
	docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}
	logger.Info().Str("host", docs.SwaggerInfo.Host).Msg("swagger documentation enabled")

	addr := ":" + cfg.ServerPort
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server start")
	}
}
