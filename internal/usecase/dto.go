package usecase

type DiscoverLeadsSummary struct {
	Processed int `json:"processed"` // eligible companies that counted toward the limit
	Skipped   int `json:"skipped"`   // filtered out before any provider call
	Saved     int `json:"saved"`     // leads written as READY
}

type SendReadyLeadsSummary struct {
	Selected int `json:"selected"`
	Sent     int `json:"sent"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
}

type SendManualEmailInput struct {
	Name    string   `json:"name"`
	Emails  []string `json:"emails"`
	Company string   `json:"company"`
	Type    string   `json:"type"`
}

type RecipientResult struct {
	Email     string `json:"email"`
	Status    string `json:"status"` // sent, failed
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type SendManualEmailOutput struct {
	Message string            `json:"message"`
	Results []RecipientResult `json:"results"`
}
