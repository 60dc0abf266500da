package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/conversation"
	"github.com/popeskul/tg-forwarder/internal/poller/mocks"
	"github.com/popeskul/tg-forwarder/internal/settings"
	"github.com/popeskul/tg-forwarder/internal/telegram"
)

const testChat int64 = 42

var testConfig = Config{
	PollTimeout:    30 * time.Second,
	BackoffFloor:   2 * time.Second,
	BackoffCeiling: 60 * time.Second,
	IdleInterval:   10 * time.Second,
	DrainPause:     500 * time.Millisecond,
}

func enabledSnapshot() settings.Snapshot {
	s := settings.Defaults()
	s.PollingEnabled = true
	s.Credentials = settings.Credentials{BotToken: "token", ChatID: testChat}
	return s
}

func TestBackoff_BoundsAndReset(t *testing.T) {
	b := NewBackoff(2*time.Second, 60*time.Second)

	var got []time.Duration
	for i := 0; i < 8; i++ {
		got = append(got, b.Next())
	}

	assert.Equal(t, []time.Duration{
		2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
		32 * time.Second, 60 * time.Second, 60 * time.Second, 60 * time.Second,
	}, got)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
		assert.LessOrEqual(t, got[i], 60*time.Second)
	}

	b.Reset()
	assert.Equal(t, 2*time.Second, b.Next())
}

func TestBackoff_InvalidBounds(t *testing.T) {
	b := NewBackoff(0, -1)
	assert.Equal(t, time.Second, b.Next())
	assert.Equal(t, time.Second, b.Next())
}

func TestPoller_OrderedProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	handler := mocks.NewMockHandler(ctrl)
	source := mocks.NewMockSettingsSource(ctrl)

	source.EXPECT().Current().Return(enabledSnapshot()).AnyTimes()
	fetcher.EXPECT().FetchUpdates(gomock.Any(), "token", int64(1), 30*time.Second).Return([]telegram.Update{
		{ID: 5, Kind: telegram.KindText, ChatID: testChat, Text: "a"},
		{ID: 6, Kind: telegram.KindText, ChatID: testChat, Text: "b"},
		{ID: 7, Kind: telegram.KindText, ChatID: testChat, Text: "c"},
	}, nil)

	p := New(testConfig, fetcher, handler, source, zap.NewNop())

	var seen []int64
	handler.EXPECT().Handle(gomock.Any(), gomock.Any()).Do(func(_ context.Context, u telegram.Update) {
		assert.Equal(t, u.ID, p.Cursor(), "cursor advances before the update is handled")
		seen = append(seen, u.ID)
	}).Times(3)

	wait := p.step(context.Background())

	assert.Equal(t, []int64{5, 6, 7}, seen)
	assert.Equal(t, int64(7), p.Cursor())
	assert.Equal(t, testConfig.DrainPause, wait)

	fetcher.EXPECT().FetchUpdates(gomock.Any(), "token", int64(8), gomock.Any()).Return(nil, nil)
	p.step(context.Background())
}

func TestPoller_DropsForeignChats(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	handler := mocks.NewMockHandler(ctrl)
	source := mocks.NewMockSettingsSource(ctrl)

	source.EXPECT().Current().Return(enabledSnapshot()).AnyTimes()
	fetcher.EXPECT().FetchUpdates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]telegram.Update{
		{ID: 1, Kind: telegram.KindText, ChatID: 999, Text: "/start"},
		{ID: 2, Kind: telegram.KindCallback, ChatID: testChat, Data: "cmd_sms_number"},
	}, nil)
	handler.EXPECT().Handle(gomock.Any(), telegram.Update{
		ID: 2, Kind: telegram.KindCallback, ChatID: testChat, Data: "cmd_sms_number",
	})

	p := New(testConfig, fetcher, handler, source, zap.NewNop())
	p.step(context.Background())

	assert.Equal(t, int64(2), p.Cursor(), "foreign updates still advance the cursor")
}

func TestPoller_SkipsReplayedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	handler := mocks.NewMockHandler(ctrl)
	source := mocks.NewMockSettingsSource(ctrl)

	source.EXPECT().Current().Return(enabledSnapshot()).AnyTimes()
	gomock.InOrder(
		fetcher.EXPECT().FetchUpdates(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).
			Return([]telegram.Update{{ID: 10, Kind: telegram.KindText, ChatID: testChat, Text: "x"}}, nil),
		fetcher.EXPECT().FetchUpdates(gomock.Any(), gomock.Any(), int64(11), gomock.Any()).
			Return([]telegram.Update{
				{ID: 10, Kind: telegram.KindText, ChatID: testChat, Text: "x"},
				{ID: 11, Kind: telegram.KindText, ChatID: testChat, Text: "y"},
			}, nil),
	)
	handler.EXPECT().Handle(gomock.Any(), gomock.Any()).Times(2)

	p := New(testConfig, fetcher, handler, source, zap.NewNop())
	p.step(context.Background())
	p.step(context.Background())

	assert.Equal(t, int64(11), p.Cursor())
}

func TestPoller_BackoffOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	handler := mocks.NewMockHandler(ctrl)
	source := mocks.NewMockSettingsSource(ctrl)

	source.EXPECT().Current().Return(enabledSnapshot()).AnyTimes()

	failures := []error{
		&telegram.NetworkError{Op: "getUpdates", Err: errors.New("dial tcp: refused")},
		&telegram.APIError{Op: "getUpdates", Code: 401, Message: "Unauthorized"},
		errors.New("unexpected"),
		errors.New("unexpected"),
		errors.New("unexpected"),
		errors.New("unexpected"),
		errors.New("unexpected"),
	}
	calls := make([]any, 0, len(failures)+1)
	for _, err := range failures {
		calls = append(calls, fetcher.EXPECT().FetchUpdates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, err))
	}
	calls = append(calls, fetcher.EXPECT().FetchUpdates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil))
	gomock.InOrder(calls...)

	p := New(testConfig, fetcher, handler, source, zap.NewNop())
	ctx := context.Background()

	var waits []time.Duration
	for range failures {
		waits = append(waits, p.step(ctx))
	}

	assert.Equal(t, []time.Duration{
		2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
		32 * time.Second, 60 * time.Second, 60 * time.Second,
	}, waits)
	assert.Equal(t, len(failures), p.Status().ConsecutiveFailures)
	assert.Equal(t, "unexpected", p.Status().LastError)

	assert.Equal(t, testConfig.DrainPause, p.step(ctx))

	status := p.Status()
	assert.Zero(t, status.ConsecutiveFailures)
	assert.Empty(t, status.LastError)
	assert.Equal(t, 2*time.Second, status.Backoff)
	assert.False(t, status.LastSuccess.IsZero())
}

func TestPoller_Disabled(t *testing.T) {
	tests := []struct {
		name string
		snap settings.Snapshot
	}{
		{
			name: "polling flag off",
			snap: func() settings.Snapshot {
				s := enabledSnapshot()
				s.PollingEnabled = false
				return s
			}(),
		},
		{
			name: "no token",
			snap: func() settings.Snapshot {
				s := enabledSnapshot()
				s.Credentials.BotToken = ""
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockFetcher(ctrl)
			handler := mocks.NewMockHandler(ctrl)
			source := mocks.NewMockSettingsSource(ctrl)
			source.EXPECT().Current().Return(tt.snap)

			p := New(testConfig, fetcher, handler, source, zap.NewNop())

			assert.Equal(t, testConfig.IdleInterval, p.step(context.Background()))
			assert.False(t, p.Status().Enabled)
		})
	}
}

func TestPoller_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	handler := mocks.NewMockHandler(ctrl)
	source := mocks.NewMockSettingsSource(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	source.EXPECT().Current().Return(enabledSnapshot()).AnyTimes()
	fetcher.EXPECT().FetchUpdates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("offline")).AnyTimes()

	p := New(testConfig, fetcher, handler, source, zap.NewNop())

	var slept []time.Duration
	p.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		if len(slept) == 3 {
			cancel()
		}
		return ctx.Err()
	}

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("poller did not stop")
	}

	require.Len(t, slept, 3)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}, slept)
}

// Replaying the same ids against a reset engine must not panic; the worst
// case is another menu.
func TestPoller_ReplayAfterRestart(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockSettingsSource(ctrl)
	source.EXPECT().Current().Return(enabledSnapshot()).AnyTimes()

	replier := &countingReplier{}
	engine := conversation.NewEngine(replier, nil, nil, zap.NewNop())

	batch := []telegram.Update{
		{ID: 3, Kind: telegram.KindCallback, ChatID: testChat, CallbackID: "q", Data: "cmd_sms_number"},
		{ID: 4, Kind: telegram.KindText, ChatID: testChat, Text: "+15551234567"},
	}

	for restart := 0; restart < 2; restart++ {
		fetcher := mocks.NewMockFetcher(ctrl)
		fetcher.EXPECT().FetchUpdates(gomock.Any(), gomock.Any(), int64(1), gomock.Any()).Return(batch, nil)

		engine.Reset()
		p := New(testConfig, fetcher, engine, source, zap.NewNop())
		require.NotPanics(t, func() { p.step(context.Background()) })
		assert.Equal(t, conversation.AwaitingSmsBodyForNumber, engine.State(testChat))
	}

	assert.Equal(t, 4, replier.replies)
}

type countingReplier struct {
	replies int
}

func (r *countingReplier) Reply(int64, string, telegram.Keyboard) { r.replies++ }
func (r *countingReplier) Acknowledge(string, string)             {}
