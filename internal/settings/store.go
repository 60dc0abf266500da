package settings

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	hashKey       = "tgforwarder:settings"
	changeChannel = "tgforwarder:settings:changed"
)

// Store is the single writer of the published Snapshot. Readers call
// Current, which never blocks on a write.
type Store struct {
	client  *redis.Client
	logger  *zap.Logger
	current atomic.Pointer[Snapshot]
	resync  time.Duration
}

func NewStore(client *redis.Client, logger *zap.Logger) *Store {
	s := &Store{
		client: client,
		logger: logger,
		resync: time.Minute,
	}
	defaults := Defaults()
	s.current.Store(&defaults)
	return s
}

// Current returns the latest published snapshot.
func (s *Store) Current() Snapshot {
	return *s.current.Load()
}

// Load reads the hash and publishes a new snapshot.
func (s *Store) Load(ctx context.Context) error {
	values, err := s.client.HGetAll(ctx, hashKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	snap, parseErr := Parse(values)
	if parseErr != nil {
		s.logger.Warn("Ignoring malformed settings values", zap.Error(parseErr))
	}
	s.current.Store(&snap)

	return nil
}

// Seed stores credentials from the bootstrap config when none are stored yet.
func (s *Store) Seed(ctx context.Context, token, chatID string) error {
	if token != "" {
		if err := s.client.HSetNX(ctx, hashKey, KeyBotToken, token).Err(); err != nil {
			return fmt.Errorf("failed to seed bot token: %w", err)
		}
	}
	if chatID != "" {
		if _, err := parseChatID(chatID); err != nil {
			return err
		}
		if err := s.client.HSetNX(ctx, hashKey, KeyChatID, chatID).Err(); err != nil {
			return fmt.Errorf("failed to seed chat id: %w", err)
		}
	}
	return s.Load(ctx)
}

// Update validates and stores a patch, then notifies every watcher.
func (s *Store) Update(ctx context.Context, patch map[string]interface{}) (Snapshot, error) {
	values, err := Normalize(patch)
	if err != nil {
		return Snapshot{}, err
	}
	if len(values) == 0 {
		return s.Current(), nil
	}

	fields := make([]interface{}, 0, len(values)*2)
	for k, v := range values {
		fields = append(fields, k, v)
	}

	if _, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hashKey, fields...)
		pipe.Publish(ctx, changeChannel, time.Now().UnixNano())
		return nil
	}); err != nil {
		return Snapshot{}, fmt.Errorf("failed to store settings: %w", err)
	}

	if err := s.Load(ctx); err != nil {
		return Snapshot{}, err
	}

	return s.Current(), nil
}

// Watch reloads the snapshot on every change notification until ctx ends.
// A periodic resync covers notifications lost while disconnected.
func (s *Store) Watch(ctx context.Context) {
	pubsub := s.client.Subscribe(ctx, changeChannel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			s.logger.Warn("Failed to close settings subscription", zap.Error(err))
		}
	}()

	ticker := time.NewTicker(s.resync)
	defer ticker.Stop()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			s.reload(ctx, "notification")
		case <-ticker.C:
			s.reload(ctx, "resync")
		}
	}
}

func (s *Store) reload(ctx context.Context, reason string) {
	if err := s.Load(ctx); err != nil {
		s.logger.Warn("Failed to reload settings", zap.String("reason", reason), zap.Error(err))
		return
	}
	s.logger.Debug("Settings reloaded", zap.String("reason", reason))
}
