package service

import (
	"context"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/dispatcher"
	"github.com/popeskul/tg-forwarder/internal/logging"
	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/monitor"
	"github.com/popeskul/tg-forwarder/internal/poller"
	"github.com/popeskul/tg-forwarder/internal/scheduler"
	"github.com/popeskul/tg-forwarder/internal/settings"
	"github.com/popeskul/tg-forwarder/internal/telegram"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// ForwardingService relays incoming SMS to the chat.
type ForwardingService interface {
	ForwardSMS(ctx context.Context, sender, body string) bool
}

// MessageService serves the forwarded-message and log history.
type MessageService interface {
	GetMessages(ctx context.Context, filter MessageQuery) (*models.MessageList, error)
	GetStats(ctx context.Context) (*models.MessageStats, error)
	GetLogs(ctx context.Context, limit int) ([]*models.LogEntry, error)
	ClearLogs(ctx context.Context) error
}

type SettingsService interface {
	Get() map[string]string
	Update(ctx context.Context, patch map[string]interface{}) (map[string]string, error)
	Verify(ctx context.Context, req VerifyRequest) error
}

// EventService accepts device events. It is implemented by monitor.Monitor.
type EventService interface {
	SubmitBattery(s monitor.BatterySample) error
	SubmitConnectivity(e monitor.ConnectivityEvent) error
	SubmitCall(e monitor.CallEvent) error
	SubmitSystem(e monitor.SystemEvent) error
}

// ContactService replaces the synced address book. It is implemented by
// contacts.Lookup.
type ContactService interface {
	Sync(ctx context.Context, book []models.Contact) (int, error)
}

type CleanupService interface {
	Start(ctx context.Context) error
	Stop() error
	IsRunning() bool
	Status() scheduler.Status
	Cleanup(ctx context.Context) error
}

type HealthService interface {
	GetHealth(ctx context.Context) *HealthStatus
}

// Collaborators.

type Notifier interface {
	Notify(text string)
}

type NameResolver interface {
	NameByNumber(ctx context.Context, number string) (string, bool)
}

type SettingsStore interface {
	Current() settings.Snapshot
	Update(ctx context.Context, patch map[string]interface{}) (settings.Snapshot, error)
}

// MessageSender performs a synchronous Bot API send.
type MessageSender interface {
	SendMessage(ctx context.Context, token string, chatID int64, text string, keyboard telegram.Keyboard) error
}

type PollerStatus interface {
	Status() poller.Status
}

type DispatcherStatus interface {
	Stats() dispatcher.Stats
	BreakerStatus() breaker.Status
}

type BreakerStatus interface {
	BreakerStatus() breaker.Status
}

type LogSinkStatus interface {
	Stats() logging.Stats
}
