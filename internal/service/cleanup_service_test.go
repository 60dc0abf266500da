package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/config"
	"github.com/popeskul/tg-forwarder/internal/repository/mocks"
	"github.com/popeskul/tg-forwarder/internal/scheduler"
	"github.com/popeskul/tg-forwarder/internal/service"
)

var cleanupConfig = config.CleanupConfig{IntervalMinutes: 15, RetentionMinutes: 30}

func cutoffNear(retention time.Duration) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		cutoff, ok := x.(time.Time)
		if !ok {
			return false
		}
		want := time.Now().Add(-retention)
		return cutoff.After(want.Add(-time.Minute)) && cutoff.Before(want.Add(time.Minute))
	})
}

func TestCleanupService_Cleanup(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mocks.MockMessageRepository, *mocks.MockLogRepository)
		wantErrs   []string
	}{
		{
			name: "both tables",
			setupMocks: func(msgs *mocks.MockMessageRepository, logs *mocks.MockLogRepository) {
				msgs.EXPECT().DeleteOlderThan(gomock.Any(), cutoffNear(30*time.Minute)).Return(int64(3), nil)
				logs.EXPECT().DeleteOlderThan(gomock.Any(), cutoffNear(30*time.Minute)).Return(int64(10), nil)
			},
		},
		{
			name: "message failure does not skip logs",
			setupMocks: func(msgs *mocks.MockMessageRepository, logs *mocks.MockLogRepository) {
				msgs.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))
				logs.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(4), nil)
			},
			wantErrs: []string{"failed to delete old messages"},
		},
		{
			name: "both fail",
			setupMocks: func(msgs *mocks.MockMessageRepository, logs *mocks.MockLogRepository) {
				msgs.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("a"))
				logs.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("b"))
			},
			wantErrs: []string{"failed to delete old messages", "failed to delete old logs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockRepository(ctrl)
			msgs := mocks.NewMockMessageRepository(ctrl)
			logs := mocks.NewMockLogRepository(ctrl)
			mockRepo.EXPECT().Message().Return(msgs).AnyTimes()
			mockRepo.EXPECT().Log().Return(logs).AnyTimes()
			tt.setupMocks(msgs, logs)

			err := service.NewCleanupService(cleanupConfig, mockRepo, zap.NewNop()).Cleanup(context.Background())

			if len(tt.wantErrs) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.wantErrs {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestCleanupService_Lifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRepository(ctrl)
	msgs := mocks.NewMockMessageRepository(ctrl)
	logs := mocks.NewMockLogRepository(ctrl)
	mockRepo.EXPECT().Message().Return(msgs).AnyTimes()
	mockRepo.EXPECT().Log().Return(logs).AnyTimes()

	ran := make(chan struct{}, 1)
	msgs.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	logs.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, time.Time) (int64, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 0, nil
	}).AnyTimes()

	svc := service.NewCleanupService(cleanupConfig, mockRepo, zap.NewNop())

	require.NoError(t, svc.Start(context.Background()))
	assert.True(t, svc.IsRunning())
	assert.ErrorIs(t, svc.Start(context.Background()), scheduler.ErrSchedulerAlreadyRunning)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup did not run on start")
	}

	require.NoError(t, svc.Stop())
	assert.False(t, svc.IsRunning())

	status := svc.Status()
	assert.Equal(t, "cleanup", status.Name)
	assert.Equal(t, 15*time.Minute, status.Interval)
	assert.Equal(t, uint64(1), status.Runs)
}
