// Package telegram is a thin request/response client for the Telegram Bot API.
package telegram

import (
	"errors"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MaxCallbackData is the Bot API ceiling for callback_data, in bytes.
const MaxCallbackData = 64

type Kind int

const (
	KindOther Kind = iota
	KindText
	KindCallback
)

// Update is an inbound Bot API update reduced to what the bot reacts to.
type Update struct {
	ID         int64
	Kind       Kind
	ChatID     int64
	Text       string
	CallbackID string
	Data       string
}

type Button struct {
	Text string
	Data string
}

// Keyboard is a list of inline keyboard rows.
type Keyboard [][]Button

// NetworkError means the Bot API could not be reached or answered garbage.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("telegram %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError means the Bot API answered with ok=false.
type APIError struct {
	Op      string
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: api error %d: %s", e.Op, e.Code, e.Message)
}

// IsRejection reports whether the Bot API received the request and refused
// it. Flood limits (429) and server-side failures are not rejections.
func IsRejection(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code >= http.StatusBadRequest &&
		apiErr.Code < http.StatusInternalServerError &&
		apiErr.Code != http.StatusTooManyRequests
}

func fromAPIUpdate(u tgbotapi.Update) Update {
	out := Update{ID: int64(u.UpdateID)}

	switch {
	case u.Message != nil:
		out.Kind = KindText
		out.Text = u.Message.Text
		if u.Message.Chat != nil {
			out.ChatID = u.Message.Chat.ID
		}
		if u.Message.Text == "" {
			out.Kind = KindOther
		}
	case u.CallbackQuery != nil:
		out.Kind = KindCallback
		out.CallbackID = u.CallbackQuery.ID
		out.Data = u.CallbackQuery.Data
		if u.CallbackQuery.Message != nil && u.CallbackQuery.Message.Chat != nil {
			out.ChatID = u.CallbackQuery.Message.Chat.ID
		}
	}

	return out
}

func toMarkup(k Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(k))
	for _, row := range k {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
