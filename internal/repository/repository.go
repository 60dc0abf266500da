// Package repository implements PostgreSQL persistence for forwarded messages,
// application logs and the synced address book.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db      *sqlx.DB
	message MessageRepository
	log     LogRepository
	contact ContactRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:      db,
		message: NewMessageRepository(db),
		log:     NewLogRepository(db),
		contact: NewContactRepository(db),
	}
}

func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

func (r *repositoryImpl) Log() LogRepository {
	return r.log
}

func (r *repositoryImpl) Contact() ContactRepository {
	return r.contact
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
