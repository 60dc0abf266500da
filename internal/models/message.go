// Package models defines data structures used throughout the application.
package models

import "time"

type MessageType string

const (
	MessageTypeSMS  MessageType = "SMS"
	MessageTypeCall MessageType = "CALL"
)

// ForwardedMessage is one device event forwarded to the chat.
type ForwardedMessage struct {
	ID        int64       `db:"id" json:"id"`
	Sender    string      `db:"sender" json:"sender"`
	Content   string      `db:"content" json:"content"`
	Type      MessageType `db:"type" json:"type"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

type MessageFilter struct {
	Query  string
	Type   MessageType
	Offset int
	Limit  int
}

type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

type MessageList struct {
	Messages   []*ForwardedMessage `json:"messages"`
	Pagination Pagination          `json:"pagination"`
}

// MessageStats mirrors the counters shown on the device home screen.
type MessageStats struct {
	Total int64 `json:"total"`
	SMS   int64 `json:"sms"`
	Calls int64 `json:"calls"`
}

// SendSMSRequest is the body posted to the device bridge.
type SendSMSRequest struct {
	To      string `json:"to"`
	Content string `json:"content"`
}
