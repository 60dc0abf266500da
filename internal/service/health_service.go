package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/repository"
)

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	poller      PollerStatus
	dispatcher  DispatcherStatus
	gateway     BreakerStatus
	cleanup     CleanupService
	logSink     LogSinkStatus
}

func NewHealthService(
	repo repository.Repository,
	redisClient *redis.Client,
	poller PollerStatus,
	dispatcher DispatcherStatus,
	gateway BreakerStatus,
	cleanup CleanupService,
	logSink LogSinkStatus,
) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		poller:      poller,
		dispatcher:  dispatcher,
		gateway:     gateway,
		cleanup:     cleanup,
		logSink:     logSink,
	}
}

func (s *healthService) GetHealth(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:         Healthy,
		DatabaseStatus: s.checkDatabaseHealth(),
		RedisStatus:    s.checkRedisHealth(ctx),
		Poller:         s.poller.Status(),
		Dispatcher:     s.dispatcher.Stats(),
		Cleanup:        s.cleanup.Status(),
		LogSink:        s.logSink.Stats(),
		Breakers: []breaker.Status{
			s.dispatcher.BreakerStatus(),
			s.gateway.BreakerStatus(),
		},
	}

	// An open breaker or a failing poller degrades the service.
	for _, b := range status.Breakers {
		if b.State == breaker.StateOpen {
			status.Status = Degraded
		}
	}
	if status.Poller.Enabled && status.Poller.ConsecutiveFailures > 0 {
		status.Status = Degraded
	}

	if status.DatabaseStatus != Connected || status.RedisStatus != Connected {
		status.Status = Unhealthy
	}

	return status
}

func (s *healthService) checkDatabaseHealth() ConnectionState {
	if err := s.repo.Ping(); err != nil {
		return Disconnected
	}
	return Connected
}

func (s *healthService) checkRedisHealth(ctx context.Context) ConnectionState {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return Disconnected
	}
	return Connected
}
