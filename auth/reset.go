package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// resetClaims embeds the user id under a purpose-specific claim so a
// reset token cannot double as an API bearer token.
type resetClaims struct {
	ResetPassword uint `json:"reset_password"`
	jwt.RegisteredClaims
}

// GenerateResetToken issues a signed, time-limited token proving the
// right to set a new password for the given user id.
func GenerateResetToken(userID uint, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := resetClaims{
		ResetPassword: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyResetToken validates a reset token and returns the embedded
// user id. Expired, badly signed, or malformed tokens all degrade to
// ok=false.
func VerifyResetToken(tokenString, secret string) (uint, bool) {
	claims := &resetClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.ResetPassword == 0 {
		return 0, false
	}
	return claims.ResetPassword, true
}
