// Package contacts resolves phone numbers to names and enumerates the synced
// address book for the bot's contact picker.
package contacts

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/repository"
)

const (
	nameCacheSize = 512
	nameCacheTTL  = 10 * time.Minute
)

// Lookup caches name resolutions, including misses, until the next sync or
// TTL expiry.
type Lookup struct {
	store  repository.ContactRepository
	names  *expirable.LRU[string, string]
	logger *zap.Logger
}

func NewLookup(store repository.ContactRepository, logger *zap.Logger) *Lookup {
	return &Lookup{
		store:  store,
		names:  expirable.NewLRU[string, string](nameCacheSize, nil, nameCacheTTL),
		logger: logger,
	}
}

// NameByNumber returns the display name for number, if known.
func (l *Lookup) NameByNumber(ctx context.Context, number string) (string, bool) {
	key := models.NormalizeNumber(number)
	if key == "" {
		return "", false
	}

	if name, ok := l.names.Get(key); ok {
		return name, name != ""
	}

	contact, err := l.store.FindByNumber(ctx, number)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		l.names.Add(key, "")
		return "", false
	case err != nil:
		l.logger.Warn("Failed to resolve contact name", zap.String("number", number), zap.Error(err))
		return "", false
	}

	l.names.Add(key, contact.DisplayName)
	return contact.DisplayName, true
}

// Page returns up to limit contacts starting at offset.
func (l *Lookup) Page(ctx context.Context, offset, limit int) ([]models.Contact, error) {
	rows, err := l.store.Page(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return flatten(rows), nil
}

func (l *Lookup) Search(ctx context.Context, query string, limit int) ([]models.Contact, error) {
	rows, err := l.store.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return flatten(rows), nil
}

// Sync replaces the address book and drops cached names.
func (l *Lookup) Sync(ctx context.Context, book []models.Contact) (int, error) {
	n, err := l.store.Replace(ctx, book)
	if err != nil {
		return 0, err
	}
	l.names.Purge()
	l.logger.Info("Address book synced", zap.Int("contacts", n))
	return n, nil
}

func flatten(rows []*models.Contact) []models.Contact {
	out := make([]models.Contact, 0, len(rows))
	for _, c := range rows {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out
}
