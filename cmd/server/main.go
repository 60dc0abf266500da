// Package main is the entry point for the tg-forwarder service.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/config"
	"github.com/popeskul/tg-forwarder/internal/contacts"
	"github.com/popeskul/tg-forwarder/internal/conversation"
	"github.com/popeskul/tg-forwarder/internal/device"
	"github.com/popeskul/tg-forwarder/internal/dispatcher"
	"github.com/popeskul/tg-forwarder/internal/handler"
	"github.com/popeskul/tg-forwarder/internal/infrastructure/migrate"
	"github.com/popeskul/tg-forwarder/internal/logging"
	"github.com/popeskul/tg-forwarder/internal/middleware"
	"github.com/popeskul/tg-forwarder/internal/monitor"
	"github.com/popeskul/tg-forwarder/internal/poller"
	"github.com/popeskul/tg-forwarder/internal/repository"
	"github.com/popeskul/tg-forwarder/internal/service"
	"github.com/popeskul/tg-forwarder/internal/settings"
	"github.com/popeskul/tg-forwarder/internal/telegram"
)

const eventBuffer = 64

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetURL(),
			MigrationsPath: cfg.Database.MigrationsPath,
		}, logger)
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	repo := repository.NewRepository(db)

	// Background workers stop on bgCtx; the HTTP server drains first.
	bgCtx, cancelBg := context.WithCancel(context.Background())
	var workers sync.WaitGroup
	spawn := func(run func(context.Context)) {
		workers.Add(1)
		go func() {
			defer workers.Done()
			run(bgCtx)
		}()
	}

	sink := logging.NewSink(repo.Log(), cfg.Logger.PersistBuffer)
	spawn(sink.Run)
	logger = sink.Attach(logger, persistLevel(cfg.Logger))

	store := settings.NewStore(redisClient, logger.Named("settings"))
	if err := store.Seed(ctx, cfg.Telegram.BotToken, cfg.Telegram.ChatID); err != nil {
		logger.Error("Failed to seed credentials", zap.Error(err))
	}
	if err := store.Load(ctx); err != nil {
		logger.Error("Failed to load settings, using defaults", zap.Error(err))
	}
	spawn(store.Watch)

	tgClient := telegram.NewClient(telegram.Config{
		Endpoint:    cfg.Telegram.APIEndpoint,
		HTTPTimeout: cfg.Telegram.HTTPTimeout(),
	}, logger.Named("telegram"))

	notifier := dispatcher.New(dispatcher.Config{
		QueueSize:     cfg.Dispatcher.QueueSize,
		RatePerSecond: cfg.Dispatcher.RatePerSecond,
		Burst:         cfg.Dispatcher.Burst,
		SendTimeout:   cfg.Dispatcher.SendTimeout,
	}, tgClient, store,
		breaker.New("telegram", cfg.Dispatcher.CircuitBreaker, logger, breaker.WithExpected(telegram.IsRejection)),
		logger.Named("dispatcher"))
	spawn(notifier.Run)

	lookup := contacts.NewLookup(repo.Contact(), logger.Named("contacts"))
	gateway := device.NewSMSGateway(cfg.Device,
		breaker.New("device", cfg.Device.CircuitBreaker, logger, breaker.WithExpected(device.IsPermissionDenied)),
		logger.Named("device"))

	engine := conversation.NewEngine(notifier, lookup, gateway, logger.Named("conversation"))
	updates := poller.New(poller.Config{
		PollTimeout:    cfg.Telegram.PollTimeout,
		BackoffFloor:   cfg.Poller.BackoffFloor,
		BackoffCeiling: cfg.Poller.BackoffCeiling,
		IdleInterval:   cfg.Poller.IdleInterval,
		DrainPause:     cfg.Poller.DrainPause,
	}, tgClient, engine, store, logger.Named("poller"))
	spawn(updates.Run)

	events := monitor.New(notifier, store, lookup, repo.Message(), eventBuffer, logger.Named("monitor"))
	spawn(events.Run)

	svc := service.NewService(cfg, repo, redisClient, service.Deps{
		Settings:   store,
		Sender:     tgClient,
		Notifier:   notifier,
		Names:      lookup,
		Events:     events,
		Contacts:   lookup,
		Poller:     updates,
		Dispatcher: notifier,
		Gateway:    gateway,
		LogSink:    sink,
	}, logger)

	if err := svc.Cleanup.Start(bgCtx); err != nil {
		logger.Error("Failed to start cleanup", zap.Error(err))
	}

	router := setupRouter(handler.NewHandler(svc, logger), cfg.Middleware.DeviceAPIKey)

	middlewareConfig := &middleware.Config{
		Logger:         logger.Named("http"),
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: 30 * time.Second,
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      middleware.Chain(middlewareConfig)(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if svc.Cleanup.IsRunning() {
		if err := svc.Cleanup.Stop(); err != nil {
			logger.Error("Failed to stop cleanup", zap.Error(err))
		}
	}

	cancelBg()
	workers.Wait()

	logger.Info("Server exited")
}
