package findymail

type searchRequest struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// Findymail answers either {"email": ...} or {"contact": {"email": ...}}
// depending on plan and endpoint version. Both shapes are accepted.
type searchResponse struct {
	Email   string `json:"email"`
	Contact struct {
		Email string `json:"email"`
	} `json:"contact"`
}
