package entity

import (
	"time"
)

// Lead statuses. READY is the only non-terminal state.
const (
	LeadStatusReady   = "READY"
	LeadStatusSent    = "SENT"
	LeadStatusFailed  = "FAILED"
	LeadStatusSkipped = "SKIPPED"
)

// Email template variants.
const (
	EmailTypeOpportunitySaw  = "opportunity_saw"
	EmailTypeLoveTheirWork   = "love_their_work"
	EmailTypeWaysToAddToTeam = "ways_to_add_to_team"
)

// NotFoundEmail is the sentinel some enrichment exports leave in place of a
// resolved address. Delivery skips these rows without dialing.
const NotFoundEmail = "NOT_FOUND"

type Lead struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"company_name"`
	CompanyWebsite  string    `json:"company_website"`
	FounderName     string    `json:"founder_name"`
	FounderLinkedIn string    `json:"founder_linkedin"`
	FounderEmail    string    `json:"founder_email"`
	EmailType       string    `json:"email_type"`
	GeneratedBody   string    `json:"generated_body"`
	Status          string    `json:"status"` // READY, SENT, FAILED, SKIPPED
	ErrorMessage    string    `json:"error_message,omitempty"`
	DeliveryReceipt string    `json:"delivery_receipt,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidEmailType reports whether t is one of the known template variants.
func ValidEmailType(t string) bool {
	switch t {
	case EmailTypeOpportunitySaw, EmailTypeLoveTheirWork, EmailTypeWaysToAddToTeam:
		return true
	}
	return false
}
