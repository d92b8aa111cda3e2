package auth

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SignupInput holds the fields submitted to request a confirmation code.
type SignupInput struct {
	Username string
	Email    string
}

// Normalize trims both fields and lowercases the email.
func (i SignupInput) Normalize() SignupInput {
	return SignupInput{
		Username: strings.TrimSpace(i.Username),
		Email:    strings.ToLower(strings.TrimSpace(i.Email)),
	}
}

// Validate checks all fields and collects all errors.
func (i SignupInput) Validate() error {
	errs := domain.ValidateUsername("username", i.Username)

	switch {
	case i.Email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(i.Email) > domain.MaxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case validate.Var(i.Email, "email") != nil:
		errs = append(errs, domain.FieldError{Field: "email", Message: "enter a valid email address"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ExchangeInput holds a username and the confirmation code mailed to it.
type ExchangeInput struct {
	Username         string
	ConfirmationCode string
}

// Validate checks all fields and collects all errors.
func (i ExchangeInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.ConfirmationCode == "" {
		errs = append(errs, domain.FieldError{Field: "confirmation_code", Message: "required"})
	} else if len(i.ConfirmationCode) > 128 {
		errs = append(errs, domain.FieldError{Field: "confirmation_code", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
