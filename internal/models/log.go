package models

import "time"

// LogEntry is a persisted application log line.
type LogEntry struct {
	ID        int64     `db:"id" json:"id"`
	Level     string    `db:"level" json:"level"`
	Source    string    `db:"source" json:"source"`
	Message   string    `db:"message" json:"message"`
	Fields    string    `db:"fields" json:"fields,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
