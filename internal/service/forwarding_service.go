package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/repository"
)

type forwardingService struct {
	repo     repository.Repository
	settings SettingsStore
	names    NameResolver
	notifier Notifier
	logger   *zap.Logger
}

func NewForwardingService(
	repo repository.Repository,
	settings SettingsStore,
	names NameResolver,
	notifier Notifier,
	logger *zap.Logger,
) ForwardingService {
	return &forwardingService{
		repo:     repo,
		settings: settings,
		names:    names,
		notifier: notifier,
		logger:   logger,
	}
}

// ForwardSMS stores the message and queues it for the chat. It reports false
// when SMS forwarding is switched off. A storage failure is logged and does
// not stop the notification.
func (s *forwardingService) ForwardSMS(ctx context.Context, sender, body string) bool {
	if !s.settings.Current().SMSEnabled {
		s.logger.Info("SMS received but forwarding is disabled")
		return false
	}

	sender = strings.TrimSpace(sender)
	if sender == "" {
		sender = "Unknown"
	}

	if _, err := s.repo.Message().Create(ctx, &models.ForwardedMessage{
		Sender:  sender,
		Content: body,
		Type:    models.MessageTypeSMS,
	}); err != nil {
		s.logger.Error("Failed to save forwarded SMS", zap.String("sender", sender), zap.Error(err))
	}

	display := sender
	if name, ok := s.names.NameByNumber(ctx, sender); ok {
		display = fmt.Sprintf("%s (%s)", name, sender)
	}

	s.notifier.Notify(formatSMS(display, body))
	s.logger.Info("SMS forwarded", zap.String("sender", sender))

	return true
}

func formatSMS(sender, body string) string {
	var sb strings.Builder
	sb.WriteString("📩 <b>New SMS</b>\n\n")
	sb.WriteString("<b>From:</b> ")
	sb.WriteString(html.EscapeString(sender))
	sb.WriteString("\n\n")
	sb.WriteString(html.EscapeString(body))
	return sb.String()
}
