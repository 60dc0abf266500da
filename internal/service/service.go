package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/config"
	"github.com/popeskul/tg-forwarder/internal/repository"
)

type Service struct {
	Forwarding ForwardingService
	Message    MessageService
	Settings   SettingsService
	Events     EventService
	Contacts   ContactService
	Cleanup    CleanupService
	Health     HealthService
}

// Deps are the long-lived components the services are built on.
type Deps struct {
	Settings   SettingsStore
	Sender     MessageSender
	Notifier   Notifier
	Names      NameResolver
	Events     EventService
	Contacts   ContactService
	Poller     PollerStatus
	Dispatcher DispatcherStatus
	Gateway    BreakerStatus
	LogSink    LogSinkStatus
}

func NewService(
	cfg *config.Config,
	repo repository.Repository,
	redisClient *redis.Client,
	deps Deps,
	logger *zap.Logger,
) *Service {
	cleanupService := NewCleanupService(cfg.Cleanup, repo, logger)

	return &Service{
		Forwarding: NewForwardingService(repo, deps.Settings, deps.Names, deps.Notifier, logger),
		Message:    NewMessageService(repo, logger),
		Settings:   NewSettingsService(deps.Settings, deps.Sender, logger),
		Events:     deps.Events,
		Contacts:   deps.Contacts,
		Cleanup:    cleanupService,
		Health:     NewHealthService(repo, redisClient, deps.Poller, deps.Dispatcher, deps.Gateway, cleanupService, deps.LogSink),
	}
}
