// Package monitor turns device events into chat alerts. Each event source has
// its own listener goroutine fed by a buffered channel.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/settings"
)

//go:generate mockgen -source=monitor.go -destination=mocks/mock_monitor.go -package=mocks

var (
	ErrInvalidEvent = errors.New("invalid device event")
	ErrQueueFull    = errors.New("event queue is full")
)

type Notifier interface {
	Notify(text string)
}

type SettingsSource interface {
	Current() settings.Snapshot
}

type NameResolver interface {
	NameByNumber(ctx context.Context, number string) (string, bool)
}

// MessageStore records missed calls in the forwarded-message history.
type MessageStore interface {
	Create(ctx context.Context, msg *models.ForwardedMessage) (int64, error)
}

type Monitor struct {
	notifier Notifier
	settings SettingsSource
	names    NameResolver
	messages MessageStore
	logger   *zap.Logger
	now      func() time.Time

	battery      chan BatterySample
	connectivity chan ConnectivityEvent
	calls        chan CallEvent
	system       chan SystemEvent
}

func New(notifier Notifier, source SettingsSource, names NameResolver, messages MessageStore, buffer int, logger *zap.Logger) *Monitor {
	if buffer < 1 {
		buffer = 1
	}
	return &Monitor{
		notifier:     notifier,
		settings:     source,
		names:        names,
		messages:     messages,
		logger:       logger,
		now:          time.Now,
		battery:      make(chan BatterySample, buffer),
		connectivity: make(chan ConnectivityEvent, buffer),
		calls:        make(chan CallEvent, buffer),
		system:       make(chan SystemEvent, buffer),
	}
}

func (m *Monitor) SubmitBattery(s BatterySample) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return offer(m.battery, s)
}

func (m *Monitor) SubmitConnectivity(e ConnectivityEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return offer(m.connectivity, e)
}

func (m *Monitor) SubmitCall(e CallEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return offer(m.calls, e)
}

func (m *Monitor) SubmitSystem(e SystemEvent) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return offer(m.system, e)
}

func offer[T any](ch chan<- T, v T) error {
	select {
	case ch <- v:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run starts the listeners and blocks until ctx is cancelled and all of
// them have returned.
func (m *Monitor) Run(ctx context.Context) {
	var wg sync.WaitGroup
	listeners := []func(context.Context){
		m.batteryLoop,
		m.connectivityLoop,
		m.callLoop,
		m.systemLoop,
	}

	wg.Add(len(listeners))
	for _, l := range listeners {
		go func(run func(context.Context)) {
			defer wg.Done()
			run(ctx)
		}(l)
	}

	m.logger.Info("Event monitor started", zap.Int("listeners", len(listeners)))
	wg.Wait()
	m.logger.Info("Event monitor stopped")
}

func (m *Monitor) batteryLoop(ctx context.Context) {
	tracker := NewBatteryTracker()
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-m.battery:
			for _, text := range tracker.Observe(s, m.settings.Current(), m.now()) {
				m.notifier.Notify(text)
			}
		}
	}
}

func (m *Monitor) connectivityLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-m.connectivity:
			if text, ok := connectivityAlert(e, m.settings.Current()); ok {
				m.notifier.Notify(text)
			}
		}
	}
}

func (m *Monitor) systemLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-m.system:
			if text, ok := systemAlert(e, m.settings.Current()); ok {
				m.notifier.Notify(text)
			}
		}
	}
}

func (m *Monitor) callLoop(ctx context.Context) {
	tracker := NewCallTracker()
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-m.calls:
			number, missed := tracker.Observe(e)
			if missed && m.settings.Current().MissedCallEnabled {
				m.missedCall(ctx, number)
			}
		}
	}
}

func (m *Monitor) missedCall(ctx context.Context, number string) {
	display := number
	if name, ok := m.names.NameByNumber(ctx, number); ok {
		display = fmt.Sprintf("%s (%s)", name, number)
	}

	if _, err := m.messages.Create(ctx, &models.ForwardedMessage{
		Sender:  display,
		Content: "Missed call",
		Type:    models.MessageTypeCall,
	}); err != nil {
		m.logger.Error("Failed to store missed call", zap.String("number", number), zap.Error(err))
	}

	m.logger.Info("Missed call", zap.String("number", number))
	m.notifier.Notify("📞 <b>Missed Call</b> from: " + html.EscapeString(display))
}
