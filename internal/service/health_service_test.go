package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/dispatcher"
	"github.com/popeskul/tg-forwarder/internal/logging"
	"github.com/popeskul/tg-forwarder/internal/poller"
	"github.com/popeskul/tg-forwarder/internal/repository/mocks"
	"github.com/popeskul/tg-forwarder/internal/scheduler"
	"github.com/popeskul/tg-forwarder/internal/service"
	servicemocks "github.com/popeskul/tg-forwarder/internal/service/mocks"
)

// unreachableRedis points at a port nothing listens on, so Ping fails.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "localhost:9999"})
}

func closedBreaker(name string) breaker.Status {
	return breaker.Status{Name: name, State: breaker.StateClosed}
}

func TestHealthService_GetHealth(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		pollerStatus   poller.Status
		dispatcherCB   breaker.Status
		gatewayCB      breaker.Status
		expectedDB     service.ConnectionState
		expectedStatus service.HealthState
	}{
		{
			name:           "redis unreachable",
			pollerStatus:   poller.Status{Enabled: true, Cursor: 10},
			dispatcherCB:   closedBreaker("telegram"),
			gatewayCB:      closedBreaker("device"),
			expectedDB:     service.Connected,
			expectedStatus: service.Unhealthy,
		},
		{
			name:           "database disconnected",
			pingErr:        errors.New("connection failed"),
			pollerStatus:   poller.Status{},
			dispatcherCB:   closedBreaker("telegram"),
			gatewayCB:      closedBreaker("device"),
			expectedDB:     service.Disconnected,
			expectedStatus: service.Unhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockRepository(ctrl)
			mockPoller := servicemocks.NewMockPollerStatus(ctrl)
			mockDispatcher := servicemocks.NewMockDispatcherStatus(ctrl)
			mockGateway := servicemocks.NewMockBreakerStatus(ctrl)
			mockCleanup := servicemocks.NewMockCleanupService(ctrl)
			mockSink := servicemocks.NewMockLogSinkStatus(ctrl)

			mockRepo.EXPECT().Ping().Return(tt.pingErr)
			mockPoller.EXPECT().Status().Return(tt.pollerStatus)
			mockDispatcher.EXPECT().Stats().Return(dispatcher.Stats{Sent: 3})
			mockDispatcher.EXPECT().BreakerStatus().Return(tt.dispatcherCB)
			mockGateway.EXPECT().BreakerStatus().Return(tt.gatewayCB)
			mockCleanup.EXPECT().Status().Return(scheduler.Status{Name: "cleanup", Running: true})
			mockSink.EXPECT().Stats().Return(logging.Stats{Dropped: 2, Failed: 1})

			healthService := service.NewHealthService(mockRepo, unreachableRedis(), mockPoller, mockDispatcher, mockGateway, mockCleanup, mockSink)
			status := healthService.GetHealth(context.Background())

			require.NotNil(t, status)
			assert.Equal(t, tt.expectedStatus, status.Status)
			assert.Equal(t, tt.expectedDB, status.DatabaseStatus)
			assert.Equal(t, service.Disconnected, status.RedisStatus)
			assert.Equal(t, tt.pollerStatus, status.Poller)
			assert.Equal(t, uint64(3), status.Dispatcher.Sent)
			assert.True(t, status.Cleanup.Running)
			assert.Equal(t, logging.Stats{Dropped: 2, Failed: 1}, status.LogSink)
			assert.Equal(t, []breaker.Status{tt.dispatcherCB, tt.gatewayCB}, status.Breakers)
		})
	}
}
