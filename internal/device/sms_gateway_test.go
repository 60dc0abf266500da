package device_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/breaker"
	"github.com/popeskul/tg-forwarder/internal/config"
	"github.com/popeskul/tg-forwarder/internal/device"
	"github.com/popeskul/tg-forwarder/internal/models"
)

func newGateway(url string) *device.SMSGateway {
	cfg := config.DeviceConfig{
		URL:     url,
		AuthKey: "test-auth-key",
		Timeout: 2,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests:      3,
			Interval:         60,
			Timeout:          60,
			FailureRatio:     0.6,
			ConsecutiveFails: 5,
		},
	}
	cb := breaker.New("device", cfg.CircuitBreaker, zap.NewNop(), breaker.WithExpected(device.IsPermissionDenied))
	return device.NewSMSGateway(cfg, cb, zap.NewNop())
}

func TestSMSGateway_SendSMS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-auth-key", r.Header.Get("x-device-auth-key"))

		var req models.SendSMSRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "+15551234567", req.To)
		assert.Equal(t, "Hello", req.Content)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	assert.NoError(t, newGateway(server.URL).SendSMS(context.Background(), "+15551234567", "Hello"))
}

func TestSMSGateway_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErrIs error
		wantText  string
	}{
		{
			name:      "permission denied",
			status:    http.StatusForbidden,
			wantErrIs: device.ErrPermissionDenied,
		},
		{
			name:     "device error",
			status:   http.StatusInternalServerError,
			body:     "radio off",
			wantText: "unexpected status code 500: radio off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := newGateway(server.URL).SendSMS(context.Background(), "+1", "x")
			require.Error(t, err)
			if tt.wantErrIs != nil {
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.wantText != "" {
				assert.Contains(t, err.Error(), tt.wantText)
			}
		})
	}
}

func TestSMSGateway_PermissionDeniedKeepsBreakerClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	gateway := newGateway(server.URL)
	for i := 0; i < 7; i++ {
		err := gateway.SendSMS(context.Background(), "+1", "x")
		assert.ErrorIs(t, err, device.ErrPermissionDenied, "attempt %d", i+1)
		assert.NotErrorIs(t, err, breaker.ErrOpen, "attempt %d", i+1)
	}

	assert.Equal(t, breaker.StateClosed, gateway.BreakerStatus().State)
}

func TestSMSGateway_NotConfigured(t *testing.T) {
	err := newGateway("").SendSMS(context.Background(), "+1", "x")
	assert.ErrorIs(t, err, device.ErrNotConfigured)
}
