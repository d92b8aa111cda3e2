package user

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateUserInput holds the fields of a user created by an admin.
type CreateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Bio       string
	// Role defaults to "user" when empty.
	Role string
}

// Normalize trims text fields and lowercases the email.
func (i CreateUserInput) Normalize() CreateUserInput {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.FirstName = strings.TrimSpace(i.FirstName)
	i.LastName = strings.TrimSpace(i.LastName)
	i.Role = strings.TrimSpace(i.Role)
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	errs := domain.ValidateUsername("username", i.Username)
	errs = append(errs, validateEmail(i.Email)...)
	errs = append(errs, validateName("first_name", i.FirstName)...)
	errs = append(errs, validateName("last_name", i.LastName)...)
	if i.Role != "" {
		errs = append(errs, validateRole(i.Role)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateUserInput holds a partial user update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	// Role is ignored by UpdateMe unless the caller is an admin.
	Role *string
}

// Normalize trims text fields and lowercases the email.
func (i UpdateUserInput) Normalize() UpdateUserInput {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		v := strings.TrimSpace(*p)
		return &v
	}
	i.Username = trim(i.Username)
	i.FirstName = trim(i.FirstName)
	i.LastName = trim(i.LastName)
	i.Role = trim(i.Role)
	if i.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*i.Email))
		i.Email = &v
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil {
		errs = append(errs, domain.ValidateUsername("username", *i.Username)...)
	}
	if i.Email != nil {
		errs = append(errs, validateEmail(*i.Email)...)
	}
	if i.FirstName != nil {
		errs = append(errs, validateName("first_name", *i.FirstName)...)
	}
	if i.LastName != nil {
		errs = append(errs, validateName("last_name", *i.LastName)...)
	}
	if i.Role != nil {
		errs = append(errs, validateRole(*i.Role)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// toUpdate converts the input into a repository update. Validate first.
func (i UpdateUserInput) toUpdate() domain.UserUpdate {
	upd := domain.UserUpdate{
		Username:  i.Username,
		Email:     i.Email,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Bio:       i.Bio,
	}
	if i.Role != nil {
		role := domain.UserRole(*i.Role)
		upd.Role = &role
	}
	return upd
}

func validateEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > domain.MaxEmailLength:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	case validate.Var(email, "email") != nil:
		return []domain.FieldError{{Field: "email", Message: "enter a valid email address"}}
	}
	return nil
}

func validateName(field, v string) []domain.FieldError {
	if utf8.RuneCountInString(v) > domain.MaxNameLength {
		return []domain.FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", domain.MaxNameLength)}}
	}
	return nil
}

func validateRole(role string) []domain.FieldError {
	if _, err := domain.ParseUserRole(role); err != nil {
		return []domain.FieldError{{Field: "role", Message: fmt.Sprintf("%q is not a valid choice", role)}}
	}
	return nil
}
