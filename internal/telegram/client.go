package telegram

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var allowedUpdates = []string{"message", "callback_query"}

type Config struct {
	// Endpoint is a format string taking the token and the method name.
	Endpoint string
	// HTTPTimeout must exceed the long-poll timeout.
	HTTPTimeout time.Duration
}

// Client wraps tgbotapi. One BotAPI is kept per token and all of them share
// a single http.Client, so connections are reused across calls.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger

	mu   sync.Mutex
	bots map[string]*tgbotapi.BotAPI
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
		bots:       make(map[string]*tgbotapi.BotAPI),
	}
}

// bot returns the cached BotAPI for token. It is built directly instead of via
// tgbotapi.NewBotAPI so no getMe round trip happens on first use.
func (c *Client) bot(token string) *tgbotapi.BotAPI {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.bots[token]; ok {
		return b
	}

	b := &tgbotapi.BotAPI{
		Token:  token,
		Client: c.httpClient,
		Buffer: 100,
	}
	b.SetAPIEndpoint(c.endpoint)
	c.bots[token] = b

	return b
}

// SendMessage sends HTML text with an optional inline keyboard.
func (c *Client) SendMessage(ctx context.Context, token string, chatID int64, text string, keyboard Keyboard) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if len(keyboard) > 0 {
		msg.ReplyMarkup = toMarkup(keyboard)
	}

	return c.call(ctx, "sendMessage", func() error {
		_, err := c.bot(token).Send(msg)
		return err
	})
}

// FetchUpdates long-polls getUpdates starting at sinceID.
func (c *Client) FetchUpdates(ctx context.Context, token string, sinceID int64, timeout time.Duration) ([]Update, error) {
	cfg := tgbotapi.UpdateConfig{
		Offset:         int(sinceID),
		Timeout:        int(timeout / time.Second),
		AllowedUpdates: allowedUpdates,
	}

	var raw []tgbotapi.Update
	err := c.call(ctx, "getUpdates", func() error {
		var err error
		raw, err = c.bot(token).GetUpdates(cfg)
		return err
	})
	if err != nil {
		return nil, err
	}

	updates := make([]Update, 0, len(raw))
	for _, u := range raw {
		updates = append(updates, fromAPIUpdate(u))
	}

	return updates, nil
}

// AcknowledgeCallback answers a callback query so the client spinner stops.
func (c *Client) AcknowledgeCallback(ctx context.Context, token, callbackID, text string) error {
	return c.call(ctx, "answerCallbackQuery", func() error {
		_, err := c.bot(token).Request(tgbotapi.NewCallback(callbackID, text))
		return err
	})
}

// call runs fn and classifies its error. tgbotapi has no context support, so
// on cancellation the in-flight request is abandoned and left to the HTTP
// client timeout.
func (c *Client) call(ctx context.Context, op string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	done := make(chan error, 1)
	go func() {
		done <- fn()
	}()

	select {
	case <-ctx.Done():
		return &NetworkError{Op: op, Err: ctx.Err()}
	case err := <-done:
		return classify(op, err)
	}
}

func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return &APIError{Op: op, Code: apiErr.Code, Message: apiErr.Message}
	}

	return &NetworkError{Op: op, Err: err}
}
