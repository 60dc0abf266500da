package repository

import (
	"context"
	"errors"
	"time"

	"github.com/popeskul/tg-forwarder/internal/models"
)

var ErrNotFound = errors.New("record not found")

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Message() MessageRepository
	Log() LogRepository
	Contact() ContactRepository
}

// MessageRepository stores forwarded device events.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.ForwardedMessage) (int64, error)
	List(ctx context.Context, filter models.MessageFilter) ([]*models.ForwardedMessage, error)
	Count(ctx context.Context, filter models.MessageFilter) (int64, error)
	CountByType(ctx context.Context, messageType models.MessageType) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// LogRepository stores application log entries.
type LogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) error
	List(ctx context.Context, limit int) ([]*models.LogEntry, error)
	DeleteAll(ctx context.Context) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ContactRepository serves the synced address book.
type ContactRepository interface {
	Page(ctx context.Context, offset, limit int) ([]*models.Contact, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Contact, error)
	FindByNumber(ctx context.Context, number string) (*models.Contact, error)
	Replace(ctx context.Context, contacts []models.Contact) (int, error)
}
