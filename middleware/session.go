package middleware

import (
	"net/http"
	"strconv"

	"sitetrack/auth"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Sessions resolves request identity from the signed session cookie.
type Sessions struct {
	signer *auth.CookieSigner
}

// NewSessions creates the session middleware around a cookie signer.
func NewSessions(signer *auth.CookieSigner) *Sessions {
	return &Sessions{signer: signer}
}

// Load sets the current user id on the context when a valid session
// cookie is present. Invalid or missing cookies leave the request
// anonymous; they never abort it.
func (s *Sessions) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		signed, err := c.Cookie(auth.SessionCookie)
		if err == nil && signed != "" {
			if value, err := s.signer.Verify(signed); err == nil {
				if id, err := strconv.ParseUint(value, 10, 32); err == nil && id > 0 {
					c.Set(userIDKey, uint(id))
				}
			}
		}
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page. It
// assumes Load already ran.
func (s *Sessions) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUserID(c) == 0 {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUserID returns the authenticated user's id, or 0 for an
// anonymous request.
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
