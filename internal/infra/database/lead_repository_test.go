package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adetunji/coldreach/internal/entity"
)

func newTestLeadRepo(t *testing.T) *LeadRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "agent_emails.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewLeadRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	// Init twice: startup must be idempotent.
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func testLead(company, email string) *entity.Lead {
	return &entity.Lead{
		CompanyName:     company,
		CompanyWebsite:  "https://" + company + ".io",
		FounderName:     "Jane Doe",
		FounderLinkedIn: "https://linkedin.com/in/janedoe",
		FounderEmail:    email,
		EmailType:       entity.EmailTypeLoveTheirWork,
		GeneratedBody:   "<p>Hey Jane,</p>",
		Status:          entity.LeadStatusReady,
	}
}

func TestLeadRepositoryCreateAssignsIDAndTimestamps(t *testing.T) {
	repo := newTestLeadRepo(t)
	ctx := context.Background()

	lead := testLead("acme", "jane@acme.io")
	require.NoError(t, repo.Create(ctx, lead))

	assert.NotEmpty(t, lead.ID)
	assert.False(t, lead.CreatedAt.IsZero())

	exists, err := repo.ExistsByCompanyName(ctx, "acme")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCompanyName(ctx, "other")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestLeadRepositoryRejectsDuplicateCompany(t *testing.T) {
	repo := newTestLeadRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testLead("acme", "jane@acme.io")))

	err := repo.Create(ctx, testLead("acme", "someone.else@acme.io"))
	assert.ErrorIs(t, err, ErrDuplicateCompany)

	leads, err := repo.ListReady(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestLeadRepositoryListReadyInsertionOrderAndLimit(t *testing.T) {
	repo := newTestLeadRepo(t)
	ctx := context.Background()

	for _, company := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, testLead(company, company+"@x.io")))
	}

	leads, err := repo.ListReady(ctx, 2)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "first", leads[0].CompanyName)
	assert.Equal(t, "second", leads[1].CompanyName)
}

func TestLeadRepositoryTerminalTransitions(t *testing.T) {
	repo := newTestLeadRepo(t)
	ctx := context.Background()

	sent := testLead("sent-co", "a@x.io")
	failed := testLead("failed-co", "b@x.io")
	skipped := testLead("skipped-co", entity.NotFoundEmail)
	still := testLead("still-ready", "c@x.io")
	for _, l := range []*entity.Lead{sent, failed, skipped, still} {
		require.NoError(t, repo.Create(ctx, l))
	}

	require.NoError(t, repo.MarkSent(ctx, sent.ID, "<id-1@coldreach>"))
	require.NoError(t, repo.MarkFailed(ctx, failed.ID, "smtp: 550"))
	require.NoError(t, repo.MarkSkipped(ctx, skipped.ID))

	leads, err := repo.ListReady(ctx, 10)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "still-ready", leads[0].CompanyName)

	// Receipt and error live in separate columns.
	var receipt, errMsg string
	err = repo.DB.QueryRowContext(ctx,
		`SELECT COALESCE(delivery_receipt, ''), COALESCE(error_message, '') FROM leads WHERE id = ?`,
		sent.ID,
	).Scan(&receipt, &errMsg)
	require.NoError(t, err)
	assert.Equal(t, "<id-1@coldreach>", receipt)
	assert.Empty(t, errMsg)

	err = repo.DB.QueryRowContext(ctx,
		`SELECT COALESCE(delivery_receipt, ''), COALESCE(error_message, '') FROM leads WHERE id = ?`,
		failed.ID,
	).Scan(&receipt, &errMsg)
	require.NoError(t, err)
	assert.Empty(t, receipt)
	assert.Equal(t, "smtp: 550", errMsg)
}

func TestSentEmailRepositoryAppend(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "emails.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	repo := NewSentEmailRepository(db)
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, repo.Init(ctx))

	rec := &entity.SentEmailRecord{
		RecipientEmail: "a@x.io",
		RecipientName:  "Sam",
		Company:        "Acme",
		EmailType:      entity.EmailTypeWaysToAddToTeam,
		Status:         entity.LeadStatusSent,
	}
	require.NoError(t, repo.Create(ctx, rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.SentAt.IsZero())

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sent_emails`).Scan(&count))
	assert.Equal(t, 1, count)
}
