package entity

import "time"

// SentEmailRecord is one audit row per manual-compose recipient. It is
// append-only: nothing reads these rows back except humans.
type SentEmailRecord struct {
	ID             string    `json:"id"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  string    `json:"recipient_name,omitempty"`
	Company        string    `json:"company,omitempty"`
	EmailType      string    `json:"email_type,omitempty"`
	Status         string    `json:"status"` // SENT, FAILED
	ErrorMessage   string    `json:"error_message,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}
