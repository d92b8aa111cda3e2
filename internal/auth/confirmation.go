package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// signatureLength is the number of hex characters kept from the HMAC.
const signatureLength = 20

// Confirmation issues and checks one-time confirmation codes. A code is
// "<base36 unix time>-<hmac>", where the HMAC covers the issue time and the
// user's identity and last login. Logging in changes the last login, so a
// code stops verifying once it has been exchanged.
type Confirmation struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewConfirmation creates a code generator signing with the confirmation key.
func NewConfirmation(keys Keys, ttl time.Duration) *Confirmation {
	return &Confirmation{key: keys.confirmation, ttl: ttl, now: time.Now}
}

// Generate returns a fresh code bound to the user's current state.
func (c *Confirmation) Generate(u *domain.User) string {
	return c.codeAt(u, c.now().Unix())
}

// Check reports whether code was issued for the user in its current state
// and has not outlived the TTL.
func (c *Confirmation) Check(u *domain.User, code string) bool {
	if u == nil || code == "" {
		return false
	}
	tsPart, _, ok := strings.Cut(code, "-")
	if !ok {
		return false
	}
	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil || ts < 0 {
		return false
	}
	if !hmac.Equal([]byte(c.codeAt(u, ts)), []byte(code)) {
		return false
	}
	issued := time.Unix(ts, 0)
	now := c.now()
	if issued.After(now) {
		return false
	}
	return c.ttl <= 0 || now.Sub(issued) <= c.ttl
}

func (c *Confirmation) codeAt(u *domain.User, ts int64) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(userState(u, ts)))
	sum := hex.EncodeToString(mac.Sum(nil))
	return strconv.FormatInt(ts, 36) + "-" + sum[:signatureLength]
}

func userState(u *domain.User, ts int64) string {
	lastLogin := ""
	if u.LastLoginAt != nil {
		lastLogin = strconv.FormatInt(u.LastLoginAt.UTC().UnixMicro(), 10)
	}
	return strings.Join([]string{
		u.ID.String(),
		u.Username,
		u.Email,
		lastLogin,
		strconv.FormatInt(ts, 10),
	}, "\x00")
}
