package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/config"
	"github.com/popeskul/tg-forwarder/internal/repository"
	"github.com/popeskul/tg-forwarder/internal/scheduler"
)

type cleanupService struct {
	scheduler *scheduler.Scheduler
	repo      repository.Repository
	retention time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

// NewCleanupService deletes messages and logs older than the retention window
// on a fixed schedule.
func NewCleanupService(cfg config.CleanupConfig, repo repository.Repository, logger *zap.Logger) CleanupService {
	svc := &cleanupService{
		repo:      repo,
		retention: time.Duration(cfg.RetentionMinutes) * time.Minute,
		now:       time.Now,
		logger:    logger,
	}

	interval := time.Duration(cfg.IntervalMinutes) * time.Minute
	svc.scheduler = scheduler.NewScheduler("cleanup", logger, interval, svc.Cleanup)
	return svc
}

func (s *cleanupService) Start(ctx context.Context) error {
	return s.scheduler.Start(ctx)
}

func (s *cleanupService) Stop() error {
	return s.scheduler.Stop()
}

func (s *cleanupService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *cleanupService) Status() scheduler.Status {
	return s.scheduler.Status()
}

// Cleanup runs one retention pass. A failure in one table does not skip the
// other.
func (s *cleanupService) Cleanup(ctx context.Context) error {
	cutoff := s.now().Add(-s.retention)

	var errs []error

	messages, err := s.repo.Message().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to delete old messages: %w", err))
	}

	logs, err := s.repo.Log().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to delete old logs: %w", err))
	}

	s.logger.Info("Retention cleanup finished",
		zap.Time("cutoff", cutoff),
		zap.Int64("messages", messages),
		zap.Int64("logs", logs))

	return errors.Join(errs...)
}
