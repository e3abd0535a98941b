package usecase

import (
	"fmt"
	"strings"

	"github.com/adetunji/coldreach/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateSendManualEmailInput(input SendManualEmailInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if len(input.Emails) == 0 {
		errors = append(errors, ValidationError{"emails", "must be a non-empty list"})
	} else {
		for _, email := range input.Emails {
			if strings.TrimSpace(email) == "" {
				errors = append(errors, ValidationError{"emails", "must not contain empty addresses"})
				break
			}
		}
	}

	if strings.TrimSpace(input.Company) == "" {
		errors = append(errors, ValidationError{"company", "is required"})
	}

	if strings.TrimSpace(input.Type) == "" {
		errors = append(errors, ValidationError{"type", "is required"})
	} else if !entity.ValidEmailType(input.Type) {
		errors = append(errors, ValidationError{"type", "must be a known email type"})
	}

	return errors
}
