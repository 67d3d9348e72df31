package api

import (
	"log"
	"net/http"

	"sitetrack/auth"
	"sitetrack/config"
	"sitetrack/forms"
	"sitetrack/middleware"
	"sitetrack/service"
	"sitetrack/store"

	"github.com/gin-gonic/gin"
)

// PasswordResetHandler serves the forgot-password flow: requesting a
// reset link by email and redeeming the tokenised link.
type PasswordResetHandler struct {
	st    *store.Store
	cfg   *config.Config
	email *service.EmailService
}

// NewPasswordResetHandler creates the password reset handler.
func NewPasswordResetHandler(st *store.Store, cfg *config.Config, email *service.EmailService) *PasswordResetHandler {
	return &PasswordResetHandler{st: st, cfg: cfg, email: email}
}

// RequestPage renders the form that asks for the account email.
func (h *PasswordResetHandler) RequestPage(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}
	c.HTML(http.StatusOK, "reset_password_request.html", pageData(c, h.cfg, false, "Reset Password", gin.H{
		"Form": &forms.ResetRequestForm{},
	}))
}

// Request mails a reset link when the address belongs to an account.
// The response is identical either way so the form cannot be used to
// probe which addresses are registered.
func (h *PasswordResetHandler) Request(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	var f forms.ResetRequestForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "reset_password_request.html", pageData(c, h.cfg, false, "Reset Password", gin.H{
			"Form":   &f,
			"Errors": errs,
		}))
		return
	}

	if user, err := h.st.GetUserByEmail(f.Email); err == nil {
		token, err := auth.GenerateResetToken(user.ID, h.cfg.JWT.Secret, h.cfg.Reset.ExpireTime)
		if err != nil {
			log.Printf("generate reset token for user %d: %v", user.ID, err)
		} else {
			link := h.cfg.Server.BaseURL + "/reset_password/" + token
			if err := h.email.SendPasswordResetEmail(user.Email, user.Username, link); err != nil {
				log.Printf("send reset email to %s: %v", user.Email, err)
			}
		}
	}

	setFlash(c, h.cfg, "Check your email for the instructions to reset your password.")
	c.Redirect(http.StatusFound, "/login")
}

// ResetPage renders the new-password form when the token checks out.
// An invalid or expired token silently lands on /index.
func (h *PasswordResetHandler) ResetPage(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	token := c.Param("token")
	if _, ok := auth.VerifyResetToken(token, h.cfg.JWT.Secret); !ok {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	c.HTML(http.StatusOK, "reset_password.html", pageData(c, h.cfg, false, "Reset Password", gin.H{
		"Form":  &forms.ResetPasswordForm{},
		"Token": token,
	}))
}

// Reset verifies the token again on submission and stores the new
// password hash.
func (h *PasswordResetHandler) Reset(c *gin.Context) {
	if middleware.GetCurrentUserID(c) != 0 {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	token := c.Param("token")
	userID, ok := auth.VerifyResetToken(token, h.cfg.JWT.Secret)
	if !ok {
		c.Redirect(http.StatusFound, "/index")
		return
	}

	var f forms.ResetPasswordForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "reset_password.html", pageData(c, h.cfg, false, "Reset Password", gin.H{
			"Form":   &f,
			"Errors": errs,
			"Token":  token,
		}))
		return
	}

	hash, err := auth.HashPassword(f.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not hash password")
		return
	}
	if err := h.st.UpdateUserPassword(userID, hash); err != nil {
		c.String(http.StatusInternalServerError, "could not update password")
		return
	}

	setFlash(c, h.cfg, "Your password has been updated.")
	c.Redirect(http.StatusFound, "/login")
}
