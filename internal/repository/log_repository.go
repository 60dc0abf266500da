package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/tg-forwarder/internal/models"
)

type logRepository struct {
	db *sqlx.DB
}

func NewLogRepository(db *sqlx.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO app_logs (level, source, message, fields, created_at) VALUES ($1, $2, $3, $4, $5)`,
		entry.Level, entry.Source, entry.Message, entry.Fields, createdAt)
	if err != nil {
		return fmt.Errorf("failed to create log entry: %w", err)
	}

	return nil
}

// List returns the newest entries first.
func (r *logRepository) List(ctx context.Context, limit int) ([]*models.LogEntry, error) {
	entries := []*models.LogEntry{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT id, level, source, message, fields, created_at
		FROM app_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}

	return entries, nil
}

func (r *logRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM app_logs"); err != nil {
		return fmt.Errorf("failed to clear log entries: %w", err)
	}
	return nil
}

func (r *logRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM app_logs WHERE created_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old log entries: %w", err)
	}

	return result.RowsAffected()
}
