package api

import (
	"fmt"
	"net/http"

	"sitetrack/auth"
	"sitetrack/config"
	"sitetrack/forms"
	"sitetrack/middleware"
	"sitetrack/models"
	"sitetrack/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the login, registration and landing pages.
type AuthHandler struct {
	st     *store.Store
	cfg    *config.Config
	signer *auth.CookieSigner
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(st *store.Store, cfg *config.Config, signer *auth.CookieSigner) *AuthHandler {
	return &AuthHandler{st: st, cfg: cfg, signer: signer}
}

// setSessionCookie establishes the signed session for a user. With
// remember set the cookie persists for the configured lifetime,
// otherwise it lasts until the browser closes.
func (h *AuthHandler) setSessionCookie(c *gin.Context, userID uint, remember bool) {
	secure, sameSite := cookieOptions(h.cfg)
	maxAge := 0
	if remember {
		maxAge = int(h.cfg.Session.ExpireTime.Seconds())
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    h.signer.Sign(fmt.Sprintf("%d", userID)),
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

// clearSessionCookie removes the session.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	secure, sameSite := cookieOptions(h.cfg)
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

// Index renders the landing page.
func (h *AuthHandler) Index(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	username := ""
	if user, err := h.st.GetUser(userID); err == nil {
		username = user.Username
	}

	c.HTML(http.StatusOK, "index.html", pageData(c, h.cfg, true, "Home", gin.H{
		"Username": username,
	}))
}

// LoginPage renders the sign-in form. Authenticated users are sent to
// the landing page instead.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}
	c.HTML(http.StatusOK, "login.html", pageData(c, h.cfg, false, "Sign In", gin.H{
		"Form": &forms.LoginForm{},
		"Next": c.Query("next"),
	}))
}

// Login checks the submitted credentials and establishes a session.
// Unknown user and wrong password surface the same generic notice.
func (h *AuthHandler) Login(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	var f forms.LoginForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "login.html", pageData(c, h.cfg, false, "Sign In", gin.H{
			"Form":   &f,
			"Errors": errs,
			"Next":   c.Query("next"),
		}))
		return
	}

	user, err := h.st.GetUserByUsername(f.Username)
	if err != nil || !auth.CheckPassword(user.PasswordHash, f.Password) {
		setFlash(c, h.cfg, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	h.setSessionCookie(c, user.ID, f.RememberMe)
	c.Redirect(http.StatusFound, safeNextPath(c.Query("next")))
}

// Logout clears the session and returns to the landing page, which
// redirects anonymous visitors to /login.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/index")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}
	c.HTML(http.StatusOK, "register.html", pageData(c, h.cfg, false, "Register", gin.H{
		"Form": &forms.RegisterForm{},
	}))
}

// Register validates the submission, stores the new user with a
// hashed password, and redirects to the sign-in page. Validation
// failure re-renders the form with inline errors and writes nothing.
func (h *AuthHandler) Register(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	var f forms.RegisterForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "register.html", pageData(c, h.cfg, false, "Register", gin.H{
			"Form":   &f,
			"Errors": errs,
		}))
		return
	}

	hash, err := auth.HashPassword(f.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not hash password")
		return
	}

	user := models.User{
		Username:     f.Username,
		Email:        f.Email,
		PasswordHash: hash,
	}
	if err := h.st.CreateUser(&user); err != nil {
		c.String(http.StatusInternalServerError, "could not create user")
		return
	}

	setFlash(c, h.cfg, "Congratulations, you are now a registered user!")
	c.Redirect(http.StatusFound, "/login")
}
