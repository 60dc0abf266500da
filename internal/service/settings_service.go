package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/settings"
)

const (
	verifyText    = "✅ <b>Telegram Forwarder</b>\nConnection verified."
	verifyTimeout = 15 * time.Second
)

type settingsService struct {
	store  SettingsStore
	sender MessageSender
	logger *zap.Logger
}

func NewSettingsService(store SettingsStore, sender MessageSender, logger *zap.Logger) SettingsService {
	return &settingsService{
		store:  store,
		sender: sender,
		logger: logger,
	}
}

// Get returns the stored values with the bot token masked.
func (s *settingsService) Get() map[string]string {
	values := s.store.Current().Values()
	values[settings.KeyBotToken] = maskToken(values[settings.KeyBotToken])
	return values
}

func (s *settingsService) Update(ctx context.Context, patch map[string]interface{}) (map[string]string, error) {
	if _, err := s.store.Update(ctx, patch); err != nil {
		return nil, err
	}
	s.logger.Info("Settings updated", zap.Int("keys", len(patch)))
	return s.Get(), nil
}

// Verify stores any supplied credentials and sends a test message with them.
// The Bot API error text is returned to the caller.
func (s *settingsService) Verify(ctx context.Context, req VerifyRequest) error {
	patch := map[string]interface{}{}
	if token := strings.TrimSpace(req.BotToken); token != "" {
		patch[settings.KeyBotToken] = token
	}
	if chatID := strings.TrimSpace(req.ChatID); chatID != "" {
		patch[settings.KeyChatID] = chatID
	}

	snap, err := s.store.Update(ctx, patch)
	if err != nil {
		return err
	}

	creds := snap.Credentials
	if !creds.Valid() {
		return ErrMissingCredentials
	}

	sendCtx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	if err := s.sender.SendMessage(sendCtx, creds.BotToken, creds.ChatID, verifyText, nil); err != nil {
		s.logger.Warn("Credential verification failed", zap.Int64("chatID", creds.ChatID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}

	s.logger.Info("Credentials verified", zap.Int64("chatID", creds.ChatID))
	return nil
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
