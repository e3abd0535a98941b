package usecase

import (
	"context"
	"log"

	"github.com/adetunji/coldreach/internal/entity"
	"github.com/adetunji/coldreach/internal/infra/http/middleware"
	"github.com/adetunji/coldreach/internal/infra/mail"
)

// SendManualEmailUseCase is the synchronous compose-and-send flow behind the
// HTTP API. It renders once (body and subject depend only on name, company
// and type), then attempts delivery per recipient and appends one audit row
// per recipient regardless of outcome.
type SendManualEmailUseCase struct {
	AuditRepo SentEmailRepositoryInterface
	Mailer    EmailService
}

func NewSendManualEmailUseCase(auditRepo SentEmailRepositoryInterface, mailer EmailService) *SendManualEmailUseCase {
	return &SendManualEmailUseCase{
		AuditRepo: auditRepo,
		Mailer:    mailer,
	}
}

func (uc *SendManualEmailUseCase) Execute(ctx context.Context, input SendManualEmailInput) (*SendManualEmailOutput, error) {
	validationErrors := ValidateSendManualEmailInput(input)
	if len(validationErrors) > 0 {
		errMsg := "Missing required fields or invalid emails array: "
		for i, e := range validationErrors {
			if i > 0 {
				errMsg += ", "
			}
			errMsg += e.Field + " (" + e.Message + ")"
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	subject := mail.ComposeSubject(input.Type)
	body := mail.RenderBody(input.Type, input.Name, input.Company)

	results := make([]RecipientResult, 0, len(input.Emails))

	for _, email := range input.Emails {
		messageID, err := uc.Mailer.Send(email, subject, body)

		record := &entity.SentEmailRecord{
			RecipientEmail: email,
			RecipientName:  input.Name,
			Company:        input.Company,
			EmailType:      input.Type,
		}

		if err != nil {
			log.Printf("Error sending email to %s: %v", email, err)
			middleware.RecordEmailSent("failed")
			middleware.RecordIntegrationError("smtp")
			record.Status = entity.LeadStatusFailed
			record.ErrorMessage = err.Error()
			results = append(results, RecipientResult{
				Email:  email,
				Status: "failed",
				Error:  err.Error(),
			})
		} else {
			log.Printf("Email sent to %s: %s", email, messageID)
			middleware.RecordEmailSent("sent")
			record.Status = entity.LeadStatusSent
			results = append(results, RecipientResult{
				Email:     email,
				Status:    "sent",
				MessageID: messageID,
			})
		}

		// Audit failures must not block the remaining recipients.
		if err := uc.AuditRepo.Create(ctx, record); err != nil {
			log.Printf("Error saving audit row for %s: %v", email, err)
		}
	}

	return &SendManualEmailOutput{
		Message: "Email processing complete",
		Results: results,
	}, nil
}
