package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sitetrack/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWT {
	return NewJWT(&config.Config{
		JWT: config.JWTConfig{Secret: "test-jwt-secret-key", ExpireTime: time.Hour},
	})
}

func TestGenerateToken(t *testing.T) {
	j := newTestJWT()

	token, err := j.GenerateToken(1, "testuser")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, len(token), 20)

	claims, err := j.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
}

func TestParseToken(t *testing.T) {
	j := newTestJWT()

	token, _ := j.GenerateToken(100, "admin")
	claims, err := j.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(100), claims.UserID)
	assert.Equal(t, "admin", claims.Username)

	// Empty string.
	_, err = j.ParseToken("")
	assert.Error(t, err)

	// Garbage.
	_, err = j.ParseToken("not.a.valid.jwt")
	assert.Error(t, err)
	_, err = j.ParseToken("eyJhbGciOiJmb29iIn0.xxxx.yyyy")
	assert.Error(t, err)

	// Wrong secret.
	other := NewJWT(&config.Config{JWT: config.JWTConfig{Secret: "other", ExpireTime: time.Hour}})
	otherToken, _ := other.GenerateToken(1, "x")
	_, err = j.ParseToken(otherToken)
	assert.Error(t, err)
}

func TestJWTAuth(t *testing.T) {
	j := newTestJWT()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(j.Auth())
	router.GET("/protected", func(c *gin.Context) {
		c.String(200, "id:%d", GetCurrentUserID(c))
	})

	// No token.
	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Not a Bearer header.
	req2 := httptest.NewRequest("GET", "/protected", nil)
	req2.Header.Set("Authorization", "Basic xyz")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)

	// Bearer with no token.
	req3 := httptest.NewRequest("GET", "/protected", nil)
	req3.Header.Set("Authorization", "Bearer ")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusUnauthorized, w3.Code)

	// Valid token.
	token, _ := j.GenerateToken(42, "user42")
	req4 := httptest.NewRequest("GET", "/protected", nil)
	req4.Header.Set("Authorization", "Bearer "+token)
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req4)
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, "id:42", w4.Body.String())
}
