package domain

import "github.com/google/uuid"

// Actor is the identity a request runs as. The zero value is the anonymous actor.
type Actor struct {
	UserID      uuid.UUID
	Username    string
	Role        UserRole
	IsSuperuser bool
}

// Anonymous is the actor of requests without credentials.
var Anonymous = Actor{}

// IsAuthenticated reports whether the actor carries a user identity.
func (a Actor) IsAuthenticated() bool {
	return a.UserID != uuid.Nil
}

// Owns reports whether the actor is the given author.
func (a Actor) Owns(authorID uuid.UUID) bool {
	return a.IsAuthenticated() && a.UserID == authorID
}
