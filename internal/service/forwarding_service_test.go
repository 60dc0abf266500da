package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/models"
	"github.com/popeskul/tg-forwarder/internal/repository/mocks"
	"github.com/popeskul/tg-forwarder/internal/service"
	servicemocks "github.com/popeskul/tg-forwarder/internal/service/mocks"
	"github.com/popeskul/tg-forwarder/internal/settings"
)

func TestForwardingService_ForwardSMS(t *testing.T) {
	tests := []struct {
		name          string
		smsEnabled    bool
		sender        string
		body          string
		setupMocks    func(*mocks.MockMessageRepository, *servicemocks.MockNameResolver, *servicemocks.MockNotifier)
		wantForwarded bool
	}{
		{
			name:       "known contact is escaped",
			smsEnabled: true,
			sender:     "+15550100",
			body:       "Code <1234> & more",
			setupMocks: func(repo *mocks.MockMessageRepository, names *servicemocks.MockNameResolver, n *servicemocks.MockNotifier) {
				repo.EXPECT().Create(gomock.Any(), &models.ForwardedMessage{
					Sender: "+15550100", Content: "Code <1234> & more", Type: models.MessageTypeSMS,
				}).Return(int64(1), nil)
				names.EXPECT().NameByNumber(gomock.Any(), "+15550100").Return("Bank \"Main\"", true)
				n.EXPECT().Notify("📩 <b>New SMS</b>\n\n<b>From:</b> Bank &#34;Main&#34; (+15550100)\n\nCode &lt;1234&gt; &amp; more")
			},
			wantForwarded: true,
		},
		{
			name:       "unknown sender",
			smsEnabled: true,
			sender:     "  ",
			body:       "hello",
			setupMocks: func(repo *mocks.MockMessageRepository, names *servicemocks.MockNameResolver, n *servicemocks.MockNotifier) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				names.EXPECT().NameByNumber(gomock.Any(), "Unknown").Return("", false)
				n.EXPECT().Notify("📩 <b>New SMS</b>\n\n<b>From:</b> Unknown\n\nhello")
			},
			wantForwarded: true,
		},
		{
			name:       "storage failure still notifies",
			smsEnabled: true,
			sender:     "+15550100",
			body:       "hi",
			setupMocks: func(repo *mocks.MockMessageRepository, names *servicemocks.MockNameResolver, n *servicemocks.MockNotifier) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))
				names.EXPECT().NameByNumber(gomock.Any(), gomock.Any()).Return("", false)
				n.EXPECT().Notify(gomock.Any())
			},
			wantForwarded: true,
		},
		{
			name:       "forwarding disabled",
			smsEnabled: false,
			sender:     "+15550100",
			body:       "hi",
			setupMocks: func(*mocks.MockMessageRepository, *servicemocks.MockNameResolver, *servicemocks.MockNotifier) {
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := mocks.NewMockRepository(ctrl)
			mockMessageRepo := mocks.NewMockMessageRepository(ctrl)
			mockRepo.EXPECT().Message().Return(mockMessageRepo).AnyTimes()

			store := servicemocks.NewMockSettingsStore(ctrl)
			snap := settings.Defaults()
			snap.SMSEnabled = tt.smsEnabled
			store.EXPECT().Current().Return(snap)

			names := servicemocks.NewMockNameResolver(ctrl)
			notifier := servicemocks.NewMockNotifier(ctrl)
			tt.setupMocks(mockMessageRepo, names, notifier)

			svc := service.NewForwardingService(mockRepo, store, names, notifier, zap.NewNop())
			assert.Equal(t, tt.wantForwarded, svc.ForwardSMS(context.Background(), tt.sender, tt.body))
		})
	}
}
