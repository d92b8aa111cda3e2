package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ReservedUsername is the path segment of the self-service profile and can
// never be registered.
const ReservedUsername = "me"

const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
	MaxNameLength     = 150
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// ValidateUsername checks a username and reports problems under field.
func ValidateUsername(field, username string) []FieldError {
	switch {
	case username == "":
		return []FieldError{{Field: field, Message: "required"}}
	case len(username) > MaxUsernameLength:
		return []FieldError{{Field: field, Message: fmt.Sprintf("max %d characters", MaxUsernameLength)}}
	case !usernamePattern.MatchString(username):
		return []FieldError{{Field: field, Message: "only letters, digits and @/./+/-/_ allowed"}}
	case username == ReservedUsername:
		return []FieldError{{Field: field, Message: fmt.Sprintf("%q is reserved", ReservedUsername)}}
	}
	return nil
}

// User represents an account of the review service.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Role        UserRole
	IsSuperuser bool
	Bio         string
	FirstName   string
	LastName    string
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsConfirmed reports whether the user has ever exchanged a confirmation code
// for a token pair.
func (u *User) IsConfirmed() bool {
	return u.LastLoginAt != nil
}

// Actor returns the identity used for permission checks on behalf of u.
func (u *User) Actor() Actor {
	return Actor{
		UserID:      u.ID,
		Username:    u.Username,
		Role:        u.Role,
		IsSuperuser: u.IsSuperuser,
	}
}

// UserUpdate holds a partial user update. Nil fields are left unchanged.
type UserUpdate struct {
	Username  *string
	Email     *string
	Role      *UserRole
	Bio       *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Role == nil &&
		u.Bio == nil && u.FirstName == nil && u.LastName == nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// EmailMessage is a plain-text message handed to the mail transport.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}
