package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status describes a scheduler for health reporting.
type Status struct {
	Name      string        `json:"name"`
	Running   bool          `json:"running"`
	Interval  time.Duration `json:"interval"`
	Runs      uint64        `json:"runs"`
	LastRun   time.Time     `json:"last_run,omitempty"`
	LastError string        `json:"last_error,omitempty"`
}

// Scheduler runs a task once on start and then on every interval tick.
type Scheduler struct {
	name      string
	logger    *zap.Logger
	interval  time.Duration
	taskFunc  func(context.Context) error
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	runs      uint64
	lastRun   time.Time
	lastError string
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(name string, logger *zap.Logger, interval time.Duration, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		name:     name,
		logger:   logger.With(zap.String("task", name)),
		interval: interval,
		taskFunc: taskFunc,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the scheduler and waits for an in-flight task to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *Scheduler) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Status{
		Name:      s.name,
		Running:   s.isRunning,
		Interval:  s.interval,
		Runs:      s.runs,
		LastRun:   s.lastRun,
		LastError: s.lastError,
	}
}

func (s *Scheduler) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	s.executeTask(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-stopCh:
			s.logger.Info("Scheduler stop signal received")
			return
		case <-ticker.C:
			s.executeTask(ctx)
		}
	}
}

// executeTask runs the task with a deadline shorter than the interval so
// runs never overlap.
func (s *Scheduler) executeTask(ctx context.Context) {
	s.logger.Debug("Executing scheduled task")

	timeout := s.interval
	if timeout > 2*time.Second {
		timeout -= time.Second
	}
	taskCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := s.taskFunc(taskCtx)

	s.mu.Lock()
	s.runs++
	s.lastRun = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Task execution failed", zap.Error(err))
		return
	}
	s.logger.Debug("Task execution completed successfully")
}
