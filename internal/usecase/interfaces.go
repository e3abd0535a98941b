package usecase

import (
	"context"

	"github.com/adetunji/coldreach/internal/entity"
	"github.com/adetunji/coldreach/internal/infra/integration/serper"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	ExistsByCompanyName(ctx context.Context, name string) (bool, error)
	ListReady(ctx context.Context, limit int) ([]*entity.Lead, error)
	MarkSent(ctx context.Context, id, receipt string) error
	MarkFailed(ctx context.Context, id, errMsg string) error
	MarkSkipped(ctx context.Context, id string) error
}

type SentEmailRepositoryInterface interface {
	Create(ctx context.Context, rec *entity.SentEmailRecord) error
}

type FounderSearcher interface {
	FindFounder(ctx context.Context, website string) (*serper.FounderResult, error)
}

type EmailFinder interface {
	FindEmail(ctx context.Context, name, domain string) (string, error)
}

type EmailService interface {
	Send(to, subject, htmlBody string) (string, error)
}
