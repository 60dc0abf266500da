// Package dispatcher is the single outbound funnel to the chat. Poller
// replies, callback acknowledgements and device alerts all pass through one
// queue drained by one worker.
package dispatcher

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/settings"
	"github.com/popeskul/tg-forwarder/internal/telegram"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

// Sender is the subset of the Bot API client used for delivery.
type Sender interface {
	SendMessage(ctx context.Context, token string, chatID int64, text string, keyboard telegram.Keyboard) error
	AcknowledgeCallback(ctx context.Context, token, callbackID, text string) error
}

type SettingsSource interface {
	Current() settings.Snapshot
}

type Config struct {
	QueueSize     int
	RatePerSecond float64
	Burst         int
	SendTimeout   time.Duration
}

type jobKind int

const (
	jobMessage jobKind = iota
	jobAck
)

type job struct {
	kind       jobKind
	chatID     int64
	text       string
	keyboard   telegram.Keyboard
	callbackID string
}

type Stats struct {
	Queued  int    `json:"queued"`
	Sent    uint64 `json:"sent"`
	Failed  uint64 `json:"failed"`
	Dropped uint64 `json:"dropped"`
}

type Dispatcher struct {
	sender   Sender
	settings SettingsSource
	breaker  *breaker.CircuitBreaker
	limiter  *rate.Limiter
	timeout  time.Duration
	queue    chan job
	logger   *zap.Logger

	sent    atomic.Uint64
	failed  atomic.Uint64
	dropped atomic.Uint64
}

func New(cfg Config, sender Sender, source SettingsSource, cb *breaker.CircuitBreaker, logger *zap.Logger) *Dispatcher {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	size := cfg.QueueSize
	if size < 1 {
		size = 1
	}
	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Dispatcher{
		sender:   sender,
		settings: source,
		breaker:  cb,
		limiter:  rate.NewLimiter(limit, burst),
		timeout:  timeout,
		queue:    make(chan job, size),
		logger:   logger,
	}
}

// Notify sends text to the configured chat. It never blocks and silently does
// nothing when credentials are missing.
func (d *Dispatcher) Notify(text string) {
	creds := d.settings.Current().Credentials
	if !creds.Valid() {
		return
	}
	d.enqueue(job{kind: jobMessage, chatID: creds.ChatID, text: text})
}

// Reply sends text with an optional inline keyboard to chatID.
func (d *Dispatcher) Reply(chatID int64, text string, keyboard telegram.Keyboard) {
	if !d.settings.Current().Credentials.Valid() {
		return
	}
	d.enqueue(job{kind: jobMessage, chatID: chatID, text: text, keyboard: keyboard})
}

// Acknowledge answers a callback query. It is queued ahead of any reply the
// same update produces.
func (d *Dispatcher) Acknowledge(callbackID, text string) {
	if !d.settings.Current().Credentials.Valid() {
		return
	}
	d.enqueue(job{kind: jobAck, callbackID: callbackID, text: text})
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case d.queue <- j:
	default:
		d.dropped.Add(1)
		d.logger.Warn("Outbound queue full, dropping message", zap.Int("capacity", cap(d.queue)))
	}
}

// Run drains the queue until ctx is cancelled. Pending jobs are abandoned.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-d.queue:
			d.deliver(ctx, j)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, j job) {
	creds := d.settings.Current().Credentials
	if !creds.Valid() {
		return
	}

	if j.kind == jobMessage {
		if err := d.limiter.Wait(ctx); err != nil {
			return
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.breaker.Execute(sendCtx, func() error {
		if j.kind == jobAck {
			return d.sender.AcknowledgeCallback(sendCtx, creds.BotToken, j.callbackID, j.text)
		}
		return d.sender.SendMessage(sendCtx, creds.BotToken, j.chatID, j.text, j.keyboard)
	})
	if err != nil {
		d.failed.Add(1)
		d.logger.Warn("Failed to deliver message",
			zap.Int64("chatID", j.chatID),
			zap.Bool("callbackAck", j.kind == jobAck),
			zap.Error(err))
		return
	}

	d.sent.Add(1)
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Queued:  len(d.queue),
		Sent:    d.sent.Load(),
		Failed:  d.failed.Load(),
		Dropped: d.dropped.Load(),
	}
}

func (d *Dispatcher) BreakerStatus() breaker.Status {
	return d.breaker.Status()
}
