// Package poller runs the Bot API long-poll loop and feeds updates to the
// conversation engine in order.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/settings"
	"github.com/popeskul/tg-forwarder/internal/telegram"
)

//go:generate mockgen -source=poller.go -destination=mocks/mock_poller.go -package=mocks

type Fetcher interface {
	FetchUpdates(ctx context.Context, token string, sinceID int64, timeout time.Duration) ([]telegram.Update, error)
}

// Handler processes one update to completion.
type Handler interface {
	Handle(ctx context.Context, u telegram.Update)
}

type SettingsSource interface {
	Current() settings.Snapshot
}

type Config struct {
	PollTimeout    time.Duration
	BackoffFloor   time.Duration
	BackoffCeiling time.Duration
	IdleInterval   time.Duration
	DrainPause     time.Duration
}

// Status is a point-in-time view of the loop for health reporting.
type Status struct {
	Enabled             bool          `json:"enabled"`
	Cursor              int64         `json:"cursor"`
	Backoff             time.Duration `json:"backoff"`
	ConsecutiveFailures int           `json:"consecutive_failures"`
	LastSuccess         time.Time     `json:"last_success,omitempty"`
	LastError           string        `json:"last_error,omitempty"`
}

type Poller struct {
	cfg      Config
	fetcher  Fetcher
	handler  Handler
	settings SettingsSource
	backoff  *Backoff
	logger   *zap.Logger

	// sleep is replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.RWMutex
	status Status
}

func New(cfg Config, fetcher Fetcher, handler Handler, source SettingsSource, logger *zap.Logger) *Poller {
	b := NewBackoff(cfg.BackoffFloor, cfg.BackoffCeiling)
	return &Poller{
		cfg:      cfg,
		fetcher:  fetcher,
		handler:  handler,
		settings: source,
		backoff:  b,
		logger:   logger,
		sleep:    sleepContext,
		status:   Status{Backoff: b.Current()},
	}
}

// Run polls until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("Update poller started")
	defer p.logger.Info("Update poller stopped")

	for {
		if err := p.sleep(ctx, p.step(ctx)); err != nil {
			return
		}
	}
}

// step performs one iteration and returns how long to wait before the next.
func (p *Poller) step(ctx context.Context) time.Duration {
	snap := p.settings.Current()
	enabled := snap.PollingEnabled && snap.Credentials.BotToken != ""
	p.setEnabled(enabled)

	if !enabled {
		return p.cfg.IdleInterval
	}

	cursor := p.Cursor()
	updates, err := p.fetcher.FetchUpdates(ctx, snap.Credentials.BotToken, cursor+1, p.cfg.PollTimeout)
	if err != nil {
		if ctx.Err() != nil {
			return 0
		}
		wait := p.backoff.Next()
		p.recordFailure(err)
		p.logger.Warn("Failed to fetch updates",
			zap.Duration("backoff", wait),
			zap.Error(err))
		return wait
	}

	p.backoff.Reset()
	p.recordSuccess()

	for _, u := range updates {
		if u.ID <= p.Cursor() {
			p.logger.Debug("Skipping already processed update", zap.Int64("updateID", u.ID))
			continue
		}
		p.setCursor(u.ID)

		if u.ChatID != snap.Credentials.ChatID {
			p.logger.Warn("Dropping update from foreign chat",
				zap.Int64("updateID", u.ID),
				zap.Int64("chatID", u.ChatID))
			continue
		}

		p.handler.Handle(ctx, u)
	}

	return p.cfg.DrainPause
}

func (p *Poller) Cursor() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status.Cursor
}

func (p *Poller) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

func (p *Poller) setCursor(id int64) {
	p.mu.Lock()
	p.status.Cursor = id
	p.mu.Unlock()
}

func (p *Poller) setEnabled(enabled bool) {
	p.mu.Lock()
	p.status.Enabled = enabled
	p.mu.Unlock()
}

func (p *Poller) recordFailure(err error) {
	p.mu.Lock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
	p.status.Backoff = p.backoff.Current()
	p.mu.Unlock()
}

func (p *Poller) recordSuccess() {
	p.mu.Lock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = time.Now()
	p.status.Backoff = p.backoff.Current()
	p.mu.Unlock()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
