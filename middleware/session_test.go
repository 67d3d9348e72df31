package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sitetrack/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSessionRouter(signer *auth.CookieSigner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := NewSessions(signer)
	router := gin.New()
	router.Use(s.Load())
	router.GET("/open", func(c *gin.Context) {
		c.String(200, "id:%d", GetCurrentUserID(c))
	})
	protected := router.Group("", s.RequireLogin())
	protected.GET("/private", func(c *gin.Context) {
		c.String(200, "id:%d", GetCurrentUserID(c))
	})
	return router
}

func TestSessions_ValidCookie(t *testing.T) {
	signer := auth.NewCookieSigner("test-session-secret")
	router := newSessionRouter(signer)

	req := httptest.NewRequest("GET", "/private", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: signer.Sign("42")})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "id:42", w.Body.String())
}

func TestSessions_AnonymousRedirectsToLogin(t *testing.T) {
	signer := auth.NewCookieSigner("test-session-secret")
	router := newSessionRouter(signer)

	req := httptest.NewRequest("GET", "/private", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessions_TamperedCookieIsAnonymous(t *testing.T) {
	signer := auth.NewCookieSigner("test-session-secret")
	router := newSessionRouter(signer)

	signed := signer.Sign("42")
	req := httptest.NewRequest("GET", "/open", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "7" + signed[1:]})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "id:0", w.Body.String())
}

func TestGetCurrentUserID_Empty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), GetCurrentUserID(c))

	c.Set("userID", uint(99))
	assert.Equal(t, uint(99), GetCurrentUserID(c))
}
