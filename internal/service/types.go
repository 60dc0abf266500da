package service

import (
	"errors"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/dispatcher"
	"github.com/popeskul/tg-forwarder/internal/logging"
	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/poller"
	"github.com/popeskul/tg-forwarder/internal/scheduler"
)

var (
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidLimit       = errors.New("invalid limit parameter")
	ErrInvalidType        = errors.New("invalid message type")
	ErrMissingCredentials = errors.New("bot token and chat id are required")
	ErrVerifyFailed       = errors.New("verification message was not delivered")
)

const (
	MaxPageLimit = 100
	MaxLogLimit  = 500
)

// MessageQuery selects a page of forwarded messages.
type MessageQuery struct {
	Page  int
	Limit int
	Query string
	Type  models.MessageType
}

// VerifyRequest carries credentials to save and test. Empty fields fall back
// to the stored values.
type VerifyRequest struct {
	BotToken string `json:"bot_token"`
	ChatID   string `json:"chat_id"`
}

type HealthState string

const (
	Healthy   HealthState = "healthy"
	Degraded  HealthState = "degraded"
	Unhealthy HealthState = "unhealthy"
)

type ConnectionState string

const (
	Connected    ConnectionState = "connected"
	Disconnected ConnectionState = "disconnected"
)

type HealthStatus struct {
	Status         HealthState      `json:"status"`
	DatabaseStatus ConnectionState  `json:"database_status"`
	RedisStatus    ConnectionState  `json:"redis_status"`
	Poller         poller.Status    `json:"poller"`
	Dispatcher     dispatcher.Stats `json:"dispatcher"`
	Cleanup        scheduler.Status `json:"cleanup"`
	LogSink        logging.Stats    `json:"log_sink"`
	Breakers       []breaker.Status `json:"circuit_breakers"`
}
