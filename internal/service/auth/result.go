package auth

import "github.com/heartmarshall/yamdb-backend/internal/domain"

// TokenPair is returned by ExchangeCode and Refresh.
type TokenPair struct {
	Access  string
	Refresh string // raw token, NOT hash
	User    *domain.User
}
