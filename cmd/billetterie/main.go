package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/evanlesnar/billetterie/config"
	"github.com/evanlesnar/billetterie/internal/auth"
	handler "github.com/evanlesnar/billetterie/internal/handler/http"
	"github.com/evanlesnar/billetterie/internal/logger"
	"github.com/evanlesnar/billetterie/internal/mailer"
	"github.com/evanlesnar/billetterie/internal/middleware"
	"github.com/evanlesnar/billetterie/internal/repository"
	"github.com/evanlesnar/billetterie/internal/repository/postgres"
	"github.com/evanlesnar/billetterie/internal/service"
	"github.com/evanlesnar/billetterie/internal/worker"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newMailer(cfg *config.Config) (mailer.Mailer, error) {
	if cfg.SMTPHost == "" {
		return mailer.NoopMailer{}, nil
	}
	return mailer.NewSMTPMailer(mailer.Config{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.EmailFrom,
		AdminEmail: cfg.AdminEmail,
		Timeout:    cfg.MailTimeout,
	})
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	token := auth.NewAuthToken([]byte(cfg.JWTSecret))

	m, err := newMailer(cfg)
	if err != nil {
		logger.Log.Fatal("Error initializing mailer", zap.Error(err))
	}

	// dependency injection
	// events and achievements
	eventRepo := repository.NewEventRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	eventService := service.NewEventService(eventRepo, achievementRepo)
	eventHandler := handler.NewEventHandler(eventService)

	achievementService := service.NewAchievementService(achievementRepo)
	achievementHandler := handler.NewAchievementHandler(achievementService)

	// orders
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, eventRepo, m, cfg.MailTimeout)
	orderHandler := handler.NewOrderHandler(orderService)

	// auth
	adminRepo := repository.NewAdminRepository(db)
	authService := service.NewAuthService(adminRepo, token)
	authHandler := handler.NewAuthHandler(authService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	// public routes
	router.Post("/api/auth/login", authHandler.Login())
	router.Get("/api/events", eventHandler.ListEvents())
	router.Get("/api/events/{id}", eventHandler.GetEvent())
	router.Get("/api/achievements", achievementHandler.ListAchievements())
	router.Post("/api/orders", orderHandler.CreateOrder())
	router.Post("/api/orders/verify-token", orderHandler.VerifyToken())

	// routes that require administrator authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Get("/api/orders", orderHandler.ListOrders())
		group.Get("/api/orders/{id}", orderHandler.GetOrder())
		group.Put("/api/orders/{id}/validate", orderHandler.ValidateOrder())
		group.Put("/api/orders/{id}/cancel", orderHandler.CancelOrder())
		group.Post("/api/events", eventHandler.CreateEvent())
		group.Put("/api/events/{id}", eventHandler.UpdateEvent())
		group.Delete("/api/events/{id}", eventHandler.DeleteEvent())
	})

	archiver := worker.NewArchiver(eventService, cfg.ArchiveInterval)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		archiver.Run(gctx)
		return nil
	})

	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Fatal("Error running server", zap.Error(err))
	}
}
