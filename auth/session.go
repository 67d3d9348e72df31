package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// SessionCookie is the cookie carrying the signed user id.
const SessionCookie = "session_user"

// ErrInvalidSignature is returned for tampered or malformed cookie values.
var ErrInvalidSignature = errors.New("auth: invalid cookie signature")

// CookieSigner signs and verifies cookie values with HMAC-SHA256 so
// the client cannot forge another user's identity.
type CookieSigner struct {
	secret []byte
}

// NewCookieSigner creates a signer around the session secret.
func NewCookieSigner(secret string) *CookieSigner {
	return &CookieSigner{secret: []byte(secret)}
}

// Sign returns "value.signature".
func (s *CookieSigner) Sign(value string) string {
	return value + "." + s.signature(value)
}

// Verify splits a signed cookie value and checks its signature.
// Malformed input degrades to an error, never a panic.
func (s *CookieSigner) Verify(signed string) (string, error) {
	idx := strings.LastIndex(signed, ".")
	if idx <= 0 || idx == len(signed)-1 {
		return "", ErrInvalidSignature
	}
	value, sig := signed[:idx], signed[idx+1:]
	if !hmac.Equal([]byte(sig), []byte(s.signature(value))) {
		return "", ErrInvalidSignature
	}
	return value, nil
}

func (s *CookieSigner) signature(value string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
