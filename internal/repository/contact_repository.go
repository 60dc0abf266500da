package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/tg-forwarder/internal/models"
)

// suffixMatchDigits is how many trailing digits identify a number written
// with and without its country prefix.
const suffixMatchDigits = 9

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Page returns contacts ordered by display name.
func (r *contactRepository) Page(ctx context.Context, offset, limit int) ([]*models.Contact, error) {
	contacts := []*models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, `
		SELECT id, display_name, phone_number
		FROM contacts
		ORDER BY display_name ASC, pk ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to page contacts: %w", err)
	}

	return contacts, nil
}

// Search matches display names case-insensitively. Duplicates are already
// collapsed by the (display_name, normalized_number) constraint.
func (r *contactRepository) Search(ctx context.Context, query string, limit int) ([]*models.Contact, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	contacts := []*models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, `
		SELECT id, display_name, phone_number
		FROM contacts
		WHERE display_name ILIKE $1
		ORDER BY display_name ASC, pk ASC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	return contacts, nil
}

// FindByNumber prefers an exact normalized match and falls back to the
// trailing digits so local and international forms resolve to one contact.
func (r *contactRepository) FindByNumber(ctx context.Context, number string) (*models.Contact, error) {
	normalized := models.NormalizeNumber(number)
	if normalized == "" {
		return nil, ErrNotFound
	}

	digits := strings.TrimPrefix(normalized, "+")
	suffix := digits
	if len(suffix) > suffixMatchDigits {
		suffix = suffix[len(suffix)-suffixMatchDigits:]
	}

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, `
		SELECT id, display_name, phone_number
		FROM contacts
		WHERE normalized_number = $1
		   OR (length($2::text) >= 7 AND right(replace(normalized_number, '+', ''), length($2::text)) = $2::text)
		ORDER BY (normalized_number = $1) DESC, display_name ASC
		LIMIT 1
	`, normalized, suffix)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find contact by number: %w", err)
	}

	return &contact, nil
}

// Replace swaps the whole address book snapshot in one transaction.
func (r *contactRepository) Replace(ctx context.Context, contacts []models.Contact) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return 0, fmt.Errorf("failed to clear contacts: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO contacts (id, display_name, phone_number, normalized_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (display_name, normalized_number) DO NOTHING
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare contact insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	inserted := 0
	for _, c := range contacts {
		normalized := models.NormalizeNumber(c.PhoneNumber)
		if strings.TrimSpace(c.DisplayName) == "" || normalized == "" {
			continue
		}

		result, err := stmt.ExecContext(ctx, c.ID, strings.TrimSpace(c.DisplayName), strings.TrimSpace(c.PhoneNumber), normalized)
		if err != nil {
			return 0, fmt.Errorf("failed to insert contact: %w", err)
		}
		if n, _ := result.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit contacts: %w", err)
	}

	return inserted, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
