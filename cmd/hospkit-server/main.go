package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hospkit/hospkit/internal/config"
	"github.com/hospkit/hospkit/internal/domain/admin"
	"github.com/hospkit/hospkit/internal/domain/ai"
	"github.com/hospkit/hospkit/internal/domain/appointment"
	"github.com/hospkit/hospkit/internal/domain/dashboard"
	"github.com/hospkit/hospkit/internal/domain/doctor"
	"github.com/hospkit/hospkit/internal/domain/patient"
	"github.com/hospkit/hospkit/internal/domain/record"
	"github.com/hospkit/hospkit/internal/platform/middleware"
	"github.com/hospkit/hospkit/internal/platform/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospkit-server",
		Short: "Hospital administration API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Initialize the data directory and seed collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store := storage.New(afero.NewOsFs(), cfg.DataDir, logger)
			if err := store.Init(); err != nil {
				return err
			}
			logger.Info().Str("dir", store.Dir()).Msg("data directory ready")
			return nil
		},
	}
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "" || os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger = logger.Level(level)

	// Flat-file store
	store := storage.New(afero.NewOsFs(), cfg.DataDir, logger)
	if err := store.Init(); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	logger.Info().Str("dir", store.Dir()).Msg("storage ready")

	// Repositories
	patientRepo := patient.NewRepository(store)
	doctorRepo := doctor.NewRepository(store)
	appointmentRepo := appointment.NewRepository(store)
	recordRepo := record.NewRepository(store)
	userRepo := admin.NewUserRepository(store)
	logRepo := admin.NewLogRepository(store)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	api := e.Group("/api")
	patient.NewHandler(patientRepo).RegisterRoutes(api)
	doctor.NewHandler(doctorRepo).RegisterRoutes(api)
	appointment.NewHandler(appointmentRepo).RegisterRoutes(api)
	record.NewHandler(recordRepo).RegisterRoutes(api)
	admin.NewHandler(userRepo, logRepo, store).RegisterRoutes(api)
	dashboard.NewHandler(patientRepo, appointmentRepo, doctorRepo).RegisterRoutes(api)
	ai.NewHandler().RegisterRoutes(api)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
