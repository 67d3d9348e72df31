package api

import (
	"net/http"
	"net/url"
	"strings"

	"sitetrack/config"
	"sitetrack/forms"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// cookieOptions returns the cookie security flags for the current run
// mode. Release mode requires HTTPS transport.
func cookieOptions(cfg *config.Config) (secure bool, sameSite http.SameSite) {
	if cfg.Server.Mode == "release" {
		secure = true
	}
	// Lax keeps cross-site POSTs from carrying the cookie while still
	// allowing same-site navigation.
	sameSite = http.SameSiteLaxMode
	return
}

// setFlash stores a one-shot notice shown on the next rendered page.
func setFlash(c *gin.Context, cfg *config.Config, message string) {
	secure, sameSite := cookieOptions(cfg)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

// takeFlash reads and clears the pending flash notice.
func takeFlash(c *gin.Context, cfg *config.Config) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	secure, sameSite := cookieOptions(cfg)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}

// pageData assembles the common template fields and merges the
// page-specific ones over them.
func pageData(c *gin.Context, cfg *config.Config, loggedIn bool, title string, extra gin.H) gin.H {
	data := gin.H{
		"Title":    title,
		"LoggedIn": loggedIn,
		"Flash":    takeFlash(c, cfg),
		"Errors":   forms.Errors{},
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// renderNotFound renders the shared 404 page.
func renderNotFound(c *gin.Context, cfg *config.Config, loggedIn bool, message string) {
	c.HTML(http.StatusNotFound, "not_found.html", pageData(c, cfg, loggedIn, "Not Found", gin.H{
		"Message": message,
	}))
}

// safeNextPath keeps post-login redirects on this site. Anything that
// is not a local absolute path falls back to /index.
func safeNextPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/index"
	}
	return next
}
