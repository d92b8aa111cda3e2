package auth

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32

// Purposes for keys derived from the master secret. A key derived for one
// purpose never verifies material produced for another.
const (
	purposeAccessToken      = "yamdb/access-token"
	purposeConfirmationCode = "yamdb/confirmation-code"
)

// Keys holds per-purpose signing keys derived from one configured secret.
type Keys struct {
	access       []byte
	confirmation []byte
}

// DeriveKeys expands secret into independent keys with HKDF-SHA256.
func DeriveKeys(secret string) (Keys, error) {
	if secret == "" {
		return Keys{}, fmt.Errorf("derive keys: empty secret")
	}
	access, err := deriveKey(secret, purposeAccessToken)
	if err != nil {
		return Keys{}, err
	}
	confirmation, err := deriveKey(secret, purposeConfirmationCode)
	if err != nil {
		return Keys{}, err
	}
	return Keys{access: access, confirmation: confirmation}, nil
}

func deriveKey(secret, purpose string) ([]byte, error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	key := make([]byte, keySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", purpose, err)
	}
	return key, nil
}
