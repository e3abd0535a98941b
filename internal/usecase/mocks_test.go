package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/adetunji/coldreach/internal/entity"
	"github.com/adetunji/coldreach/internal/infra/integration/serper"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) ExistsByCompanyName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeadRepository) ListReady(ctx context.Context, limit int) ([]*entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkSent(ctx context.Context, id, receipt string) error {
	args := m.Called(ctx, id, receipt)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkFailed(ctx context.Context, id, errMsg string) error {
	args := m.Called(ctx, id, errMsg)
	return args.Error(0)
}

func (m *MockLeadRepository) MarkSkipped(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFounderSearcher
type MockFounderSearcher struct {
	mock.Mock
}

func (m *MockFounderSearcher) FindFounder(ctx context.Context, website string) (*serper.FounderResult, error) {
	args := m.Called(ctx, website)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serper.FounderResult), args.Error(1)
}

// MockEmailFinder
type MockEmailFinder struct {
	mock.Mock
}

func (m *MockEmailFinder) FindEmail(ctx context.Context, name, domain string) (string, error) {
	args := m.Called(ctx, name, domain)
	return args.String(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) Send(to, subject, htmlBody string) (string, error) {
	args := m.Called(to, subject, htmlBody)
	return args.String(0), args.Error(1)
}

// MockSentEmailRepository
type MockSentEmailRepository struct {
	mock.Mock
}

func (m *MockSentEmailRepository) Create(ctx context.Context, rec *entity.SentEmailRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
