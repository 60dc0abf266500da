// Package logging persists application log lines so they can be read back
// over the API.
package logging

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/repository"
)

const (
	defaultSource = "app"
	flushTimeout  = 5 * time.Second
)

// Sink buffers log entries and writes them to the log repository from a single
// goroutine. Entries are dropped when the buffer is full; logging never blocks
// the caller.
type Sink struct {
	repo    repository.LogRepository
	entries chan *models.LogEntry
	dropped atomic.Uint64
	failed  atomic.Uint64
}

func NewSink(repo repository.LogRepository, buffer int) *Sink {
	if buffer <= 0 {
		buffer = 256
	}
	return &Sink{
		repo:    repo,
		entries: make(chan *models.LogEntry, buffer),
	}
}

// Run writes entries until ctx is done, then flushes what is still buffered.
func (s *Sink) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.flush()
			return
		case entry := <-s.entries:
			s.write(ctx, entry)
		}
	}
}

func (s *Sink) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	for {
		select {
		case entry := <-s.entries:
			s.write(ctx, entry)
		default:
			return
		}
	}
}

func (s *Sink) write(ctx context.Context, entry *models.LogEntry) {
	if err := s.repo.Create(ctx, entry); err != nil {
		s.failed.Add(1)
	}
}

func (s *Sink) offer(entry *models.LogEntry) {
	select {
	case s.entries <- entry:
	default:
		s.dropped.Add(1)
	}
}

// Stats counts entries that never reached the database.
type Stats struct {
	Buffered int    `json:"buffered"`
	Dropped  uint64 `json:"dropped"`
	Failed   uint64 `json:"failed"`
}

// Stats reports the buffer depth, entries discarded because the buffer was
// full, and entries the repository rejected.
func (s *Sink) Stats() Stats {
	return Stats{
		Buffered: len(s.entries),
		Dropped:  s.dropped.Load(),
		Failed:   s.failed.Load(),
	}
}

// Core returns a zapcore.Core feeding this sink.
func (s *Sink) Core(enab zapcore.LevelEnabler) zapcore.Core {
	return &core{LevelEnabler: enab, sink: s}
}

// Attach tees logger output into the sink at or above level.
func (s *Sink) Attach(logger *zap.Logger, level zapcore.Level) *zap.Logger {
	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, s.Core(level))
	}))
}

type core struct {
	zapcore.LevelEnabler
	sink   *Sink
	fields []zapcore.Field
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	source := ent.LoggerName
	if source == "" {
		source = defaultSource
	}

	entry := &models.LogEntry{
		Level:     ent.Level.String(),
		Source:    source,
		Message:   ent.Message,
		CreatedAt: ent.Time,
	}
	if len(enc.Fields) > 0 {
		if raw, err := json.Marshal(enc.Fields); err == nil {
			entry.Fields = string(raw)
		}
	}

	c.sink.offer(entry)
	return nil
}

func (c *core) Sync() error {
	return nil
}
