package usecase

import (
	"context"
	"log"

	"github.com/adetunji/coldreach/internal/entity"
	"github.com/adetunji/coldreach/internal/infra/http/middleware"
	"github.com/adetunji/coldreach/internal/infra/mail"
)

// SendReadyLeadsUseCase drains READY leads into a terminal state: SENT with
// a delivery receipt, FAILED with the error, or SKIPPED when the stored
// email is unusable. Terminal rows are never selected again, so re-running
// is safe.
type SendReadyLeadsUseCase struct {
	LeadRepo LeadRepositoryInterface
	Mailer   EmailService
}

func NewSendReadyLeadsUseCase(leadRepo LeadRepositoryInterface, mailer EmailService) *SendReadyLeadsUseCase {
	return &SendReadyLeadsUseCase{
		LeadRepo: leadRepo,
		Mailer:   mailer,
	}
}

func (uc *SendReadyLeadsUseCase) Execute(ctx context.Context, limit int) (*SendReadyLeadsSummary, error) {
	leads, err := uc.LeadRepo.ListReady(ctx, limit)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list ready leads: " + err.Error(),
		}
	}

	summary := &SendReadyLeadsSummary{Selected: len(leads)}
	log.Printf("Found %d leads ready to send (Limit: %d).", len(leads), limit)

	for _, lead := range leads {
		log.Printf("Sending email to %s at %s...", lead.FounderName, lead.FounderEmail)

		if lead.FounderEmail == "" || lead.FounderEmail == entity.NotFoundEmail {
			log.Printf("Skipping due to invalid email.")
			if err := uc.LeadRepo.MarkSkipped(ctx, lead.ID); err != nil {
				log.Printf("Error updating lead %s: %v", lead.ID, err)
			}
			summary.Skipped++
			continue
		}

		subject := mail.DeliverySubject(lead.EmailType, lead.CompanyName)

		receipt, err := uc.Mailer.Send(lead.FounderEmail, subject, lead.GeneratedBody)
		if err != nil {
			log.Printf("Failed to send email to %s: %v", lead.FounderEmail, err)
			middleware.RecordEmailSent("failed")
			middleware.RecordIntegrationError("smtp")
			if err := uc.LeadRepo.MarkFailed(ctx, lead.ID, err.Error()); err != nil {
				log.Printf("Error updating lead %s: %v", lead.ID, err)
			}
			summary.Failed++
			continue
		}

		log.Printf("Email sent: %s", receipt)
		middleware.RecordEmailSent("sent")
		if err := uc.LeadRepo.MarkSent(ctx, lead.ID, receipt); err != nil {
			log.Printf("Error updating lead %s: %v", lead.ID, err)
		}
		summary.Sent++
	}

	return summary, nil
}
