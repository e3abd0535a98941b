package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adetunji/coldreach/internal/entity"
)

// ErrDuplicateCompany is returned by Create when a lead for the same company
// name already exists. The unique index is the source of truth here, not the
// caller's pre-check.
var ErrDuplicateCompany = errors.New("lead already exists for company")

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Init creates the leads table if it does not exist yet. Safe to call on
// every startup.
func (r *LeadRepository) Init(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS leads (
			id               TEXT PRIMARY KEY,
			company_name     TEXT NOT NULL UNIQUE,
			company_website  TEXT NOT NULL,
			founder_name     TEXT NOT NULL,
			founder_linkedin TEXT NOT NULL,
			founder_email    TEXT NOT NULL,
			email_type       TEXT NOT NULL,
			generated_body   TEXT NOT NULL,
			status           TEXT NOT NULL,
			error_message    TEXT,
			delivery_receipt TEXT,
			created_at       DATETIME NOT NULL
		)
	`)
	return err
}

// Create inserts a fully resolved lead. The ID and CreatedAt are assigned
// here when the caller left them empty.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO leads (
			id, company_name, company_website, founder_name, founder_linkedin,
			founder_email, email_type, generated_body, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		lead.ID,
		lead.CompanyName,
		lead.CompanyWebsite,
		lead.FounderName,
		lead.FounderLinkedIn,
		lead.FounderEmail,
		lead.EmailType,
		lead.GeneratedBody,
		lead.Status,
		lead.CreatedAt,
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicateCompany
	}
	return err
}

func (r *LeadRepository) ExistsByCompanyName(ctx context.Context, name string) (bool, error) {
	var id string
	err := r.DB.QueryRowContext(ctx,
		`SELECT id FROM leads WHERE company_name = ?`, name,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListReady returns up to limit leads still in READY, in insertion order.
func (r *LeadRepository) ListReady(ctx context.Context, limit int) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, company_name, company_website, founder_name, founder_linkedin,
		       founder_email, email_type, generated_body, status,
		       COALESCE(error_message, ''), COALESCE(delivery_receipt, ''), created_at
		FROM leads
		WHERE status = ?
		ORDER BY rowid
		LIMIT ?
	`, entity.LeadStatusReady, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID,
			&l.CompanyName,
			&l.CompanyWebsite,
			&l.FounderName,
			&l.FounderLinkedIn,
			&l.FounderEmail,
			&l.EmailType,
			&l.GeneratedBody,
			&l.Status,
			&l.ErrorMessage,
			&l.DeliveryReceipt,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, &l)
	}
	return leads, rows.Err()
}

// MarkSent transitions the lead into SENT and records the relay's message
// identifier as the delivery receipt.
func (r *LeadRepository) MarkSent(ctx context.Context, id, receipt string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = ?, delivery_receipt = ? WHERE id = ?`,
		entity.LeadStatusSent, receipt, id,
	)
	return err
}

// MarkFailed transitions the lead into FAILED with the failure detail.
func (r *LeadRepository) MarkFailed(ctx context.Context, id, errMsg string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = ?, error_message = ? WHERE id = ?`,
		entity.LeadStatusFailed, errMsg, id,
	)
	return err
}

// MarkSkipped transitions the lead into SKIPPED. No delivery was attempted.
func (r *LeadRepository) MarkSkipped(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = ? WHERE id = ?`,
		entity.LeadStatusSkipped, id,
	)
	return err
}
