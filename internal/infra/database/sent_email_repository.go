package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/adetunji/coldreach/internal/entity"
)

type SentEmailRepository struct {
	DB *sql.DB
}

func NewSentEmailRepository(db *sql.DB) *SentEmailRepository {
	return &SentEmailRepository{DB: db}
}

// Init creates the sent_emails audit table if it does not exist yet.
func (r *SentEmailRepository) Init(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sent_emails (
			id              TEXT PRIMARY KEY,
			recipient_email TEXT NOT NULL,
			recipient_name  TEXT,
			company         TEXT,
			email_type      TEXT,
			status          TEXT NOT NULL,
			error_message   TEXT,
			sent_at         DATETIME NOT NULL
		)
	`)
	return err
}

// Create appends one audit row. Rows are never updated or read back by the
// application.
func (r *SentEmailRepository) Create(ctx context.Context, rec *entity.SentEmailRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.SentAt.IsZero() {
		rec.SentAt = time.Now()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sent_emails (
			id, recipient_email, recipient_name, company, email_type,
			status, error_message, sent_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.RecipientEmail,
		rec.RecipientName,
		rec.Company,
		rec.EmailType,
		rec.Status,
		nullString(rec.ErrorMessage),
		rec.SentAt,
	)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
