package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/adetunji/coldreach/internal/usecase"
)

type SendEmailHandler struct {
	SendManualEmailUseCase *usecase.SendManualEmailUseCase
}

func NewSendEmailHandler(uc *usecase.SendManualEmailUseCase) *SendEmailHandler {
	return &SendEmailHandler{SendManualEmailUseCase: uc}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handle serves POST /send-email. Validation problems come back as 400;
// delivery failures do not — they show up per recipient in the results list.
func (h *SendEmailHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendManualEmailInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON"})
		return
	}

	output, err := h.SendManualEmailUseCase.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
