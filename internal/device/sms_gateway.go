// Package device talks to the device bridge that owns the phone's radio.
package device

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/config"
	"github.com/popeskul/tg-forwarder/internal/models"
)

const authHeader = "x-device-auth-key"

var (
	// ErrPermissionDenied means the device refused to send because the SMS
	// permission is not granted.
	ErrPermissionDenied = errors.New("sms permission not granted")
	ErrNotConfigured    = errors.New("device bridge url is not configured")
)

// IsPermissionDenied reports whether the device answered and refused for lack
// of the SMS permission.
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

type SMSGateway struct {
	url        string
	authKey    string
	httpClient *http.Client
	breaker    *breaker.CircuitBreaker
	logger     *zap.Logger
}

func NewSMSGateway(cfg config.DeviceConfig, cb *breaker.CircuitBreaker, logger *zap.Logger) *SMSGateway {
	return &SMSGateway{
		url:     cfg.URL,
		authKey: cfg.AuthKey,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: cb,
		logger:  logger,
	}
}

// SendSMS asks the device to send body to number.
func (g *SMSGateway) SendSMS(ctx context.Context, number, body string) error {
	if g.url == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(models.SendSMSRequest{To: number, Content: body})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	err = g.breaker.Execute(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(authHeader, g.authKey)

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("failed to send request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				g.logger.Warn("Failed to close response body", zap.Error(err))
			}
		}()

		switch {
		case resp.StatusCode == http.StatusForbidden:
			return ErrPermissionDenied
		case resp.StatusCode < 200 || resp.StatusCode >= 300:
			detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
		}

		return nil
	})
	if err != nil {
		g.logger.Error("Failed to send SMS",
			zap.String("to", number),
			zap.String("circuitBreakerState", string(g.breaker.State())),
			zap.Error(err))
		return err
	}

	g.logger.Info("SMS sent", zap.String("to", number))
	return nil
}

func (g *SMSGateway) BreakerStatus() breaker.Status {
	return g.breaker.Status()
}
