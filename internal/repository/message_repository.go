package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/tg-forwarder/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create appends a forwarded event and returns its id.
func (r *messageRepository) Create(ctx context.Context, msg *models.ForwardedMessage) (int64, error) {
	query := `
		INSERT INTO messages (sender, content, type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, msg.Sender, msg.Content, msg.Type, createdAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}

	return id, nil
}

// List returns messages newest first.
func (r *messageRepository) List(ctx context.Context, filter models.MessageFilter) ([]*models.ForwardedMessage, error) {
	where, args := messageWhere(filter)
	args = append(args, filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT id, sender, content, type, created_at
		FROM messages
		%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	messages := []*models.ForwardedMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) Count(ctx context.Context, filter models.MessageFilter) (int64, error) {
	where, args := messageWhere(filter)

	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM messages "+where, args...); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

func (r *messageRepository) CountByType(ctx context.Context, messageType models.MessageType) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM messages WHERE type = $1", messageType); err != nil {
		return 0, fmt.Errorf("failed to count messages by type: %w", err)
	}

	return count, nil
}

// DeleteOlderThan removes messages created before cutoff.
func (r *messageRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE created_at < $1", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old messages: %w", err)
	}

	return result.RowsAffected()
}

func messageWhere(filter models.MessageFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%")
		clauses = append(clauses, fmt.Sprintf("(sender ILIKE $%d OR content ILIKE $%d)", len(args), len(args)))
	}

	if filter.Type != "" {
		args = append(args, filter.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}
