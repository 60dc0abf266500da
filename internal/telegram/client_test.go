package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/popeskul/tg-forwarder/internal/telegram"
)

const testToken = "123:abc"

func newTestClient(t *testing.T, handler http.HandlerFunc) *telegram.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return telegram.NewClient(telegram.Config{
		Endpoint:    server.URL + "/bot%s/%s",
		HTTPTimeout: 5 * time.Second,
	}, zap.NewNop())
}

func writeJSON(t *testing.T, w http.ResponseWriter, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte(body))
	require.NoError(t, err)
}

func TestClient_FetchUpdates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/bot"+testToken+"/getUpdates", r.URL.Path)
		assert.Equal(t, "6", r.FormValue("offset"))
		assert.Equal(t, "30", r.FormValue("timeout"))

		var allowed []string
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("allowed_updates")), &allowed))
		assert.Equal(t, []string{"message", "callback_query"}, allowed)

		writeJSON(t, w, `{"ok":true,"result":[
			{"update_id":6,"message":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"},"text":"/start"}},
			{"update_id":7,"callback_query":{"id":"cb1","data":"cmd_sms_number","from":{"id":1,"is_bot":false,"first_name":"A"},"message":{"message_id":2,"date":0,"chat":{"id":42,"type":"private"}}}},
			{"update_id":8,"message":{"message_id":3,"date":0,"chat":{"id":42,"type":"private"}}}
		]}`)
	})

	updates, err := client.FetchUpdates(context.Background(), testToken, 6, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, updates, 3)

	assert.Equal(t, telegram.Update{ID: 6, Kind: telegram.KindText, ChatID: 42, Text: "/start"}, updates[0])
	assert.Equal(t, telegram.Update{ID: 7, Kind: telegram.KindCallback, ChatID: 42, CallbackID: "cb1", Data: "cmd_sms_number"}, updates[1])
	assert.Equal(t, telegram.KindOther, updates[2].Kind)
}

func TestClient_SendMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.True(t, strings.HasSuffix(r.URL.Path, "/sendMessage"))
		assert.Equal(t, "42", r.FormValue("chat_id"))
		assert.Equal(t, "<b>hi</b>", r.FormValue("text"))
		assert.Equal(t, "HTML", r.FormValue("parse_mode"))

		var markup struct {
			InlineKeyboard [][]struct {
				Text         string `json:"text"`
				CallbackData string `json:"callback_data"`
			} `json:"inline_keyboard"`
		}
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("reply_markup")), &markup))
		require.Len(t, markup.InlineKeyboard, 2)
		assert.Equal(t, "A", markup.InlineKeyboard[0][0].Text)
		assert.Equal(t, "a", markup.InlineKeyboard[0][0].CallbackData)
		assert.Equal(t, "c", markup.InlineKeyboard[1][1].CallbackData)

		writeJSON(t, w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
	})

	err := client.SendMessage(context.Background(), testToken, 42, "<b>hi</b>", telegram.Keyboard{
		{{Text: "A", Data: "a"}},
		{{Text: "B", Data: "b"}, {Text: "C", Data: "c"}},
	})
	assert.NoError(t, err)
}

func TestClient_SendMessageWithoutKeyboard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Empty(t, r.FormValue("reply_markup"))
		writeJSON(t, w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
	})

	assert.NoError(t, client.SendMessage(context.Background(), testToken, 42, "plain", nil))
}

func TestClient_AcknowledgeCallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.True(t, strings.HasSuffix(r.URL.Path, "/answerCallbackQuery"))
		assert.Equal(t, "cb1", r.FormValue("callback_query_id"))
		writeJSON(t, w, `{"ok":true,"result":true}`)
	})

	assert.NoError(t, client.AcknowledgeCallback(context.Background(), testToken, "cb1", ""))
}

func TestClient_Errors(t *testing.T) {
	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(t, w, `{"ok":false,"error_code":401,"description":"Unauthorized"}`)
		})

		_, err := client.FetchUpdates(context.Background(), testToken, 1, time.Second)
		var apiErr *telegram.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 401, apiErr.Code)
		assert.Equal(t, "Unauthorized", apiErr.Message)
	})

	t.Run("malformed body is a network error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		})

		err := client.SendMessage(context.Background(), testToken, 1, "x", nil)
		var netErr *telegram.NetworkError
		assert.True(t, errors.As(err, &netErr))
	})

	t.Run("unreachable host is a network error", func(t *testing.T) {
		client := telegram.NewClient(telegram.Config{
			Endpoint:    "http://127.0.0.1:1/bot%s/%s",
			HTTPTimeout: time.Second,
		}, zap.NewNop())

		err := client.AcknowledgeCallback(context.Background(), testToken, "cb", "")
		var netErr *telegram.NetworkError
		assert.True(t, errors.As(err, &netErr))
	})

	t.Run("cancelled context abandons the call", func(t *testing.T) {
		release := make(chan struct{})
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			<-release
		})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := client.FetchUpdates(ctx, testToken, 1, 30*time.Second)
		assert.Less(t, time.Since(start), 2*time.Second)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestIsRejection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "bad request", err: &telegram.APIError{Op: "sendMessage", Code: 400, Message: "Bad Request: can't parse entities"}, want: true},
		{name: "stale callback", err: &telegram.APIError{Op: "answerCallbackQuery", Code: 400, Message: "Bad Request: query is too old"}, want: true},
		{name: "forbidden", err: &telegram.APIError{Op: "sendMessage", Code: 403, Message: "Forbidden: bot was blocked by the user"}, want: true},
		{name: "flood limit", err: &telegram.APIError{Op: "sendMessage", Code: 429, Message: "Too Many Requests"}},
		{name: "server error", err: &telegram.APIError{Op: "sendMessage", Code: 502, Message: "Bad Gateway"}},
		{name: "network", err: &telegram.NetworkError{Op: "sendMessage", Err: errors.New("connection reset")}},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, telegram.IsRejection(tt.err))
		})
	}
}
