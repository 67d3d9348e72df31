package forms

import (
	"sitetrack/store"
)

// LoginForm is the /login submission.
type LoginForm struct {
	Username   string `form:"username"`
	Password   string `form:"password"`
	RememberMe bool   `form:"remember_me"`
}

// Validate checks the login form. Credentials themselves are checked
// by the handler so that unknown user and wrong password surface the
// same generic message.
func (f *LoginForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "username", f.Username, st, required("Username"))
	checkField(errs, "password", f.Password, st, required("Password"))
	return errs
}

// RegisterForm is the /register submission.
type RegisterForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

// Validate checks the registration form, including uniqueness of
// username and email against the store.
func (f *RegisterForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "username", f.Username, st, required("Username"), uniqueUsername)
	checkField(errs, "email", f.Email, st, required("Email"), validEmail, uniqueEmail)
	checkField(errs, "password", f.Password, st, required("Password"))
	checkField(errs, "password2", f.Password2, st, required("Repeat Password"),
		matches(f.Password, "Passwords must match."))
	return errs
}

// ResetRequestForm is the /reset_password_request submission.
type ResetRequestForm struct {
	Email string `form:"email"`
}

// Validate checks the reset request form. Whether the email belongs to
// a user is deliberately not validated here; the handler responds the
// same way either way.
func (f *ResetRequestForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "email", f.Email, st, required("Email"), validEmail)
	return errs
}

// ResetPasswordForm is the /reset_password/<token> submission.
type ResetPasswordForm struct {
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

// Validate checks the new password pair.
func (f *ResetPasswordForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "password", f.Password, st, required("Password"))
	checkField(errs, "password2", f.Password2, st, required("Repeat Password"),
		matches(f.Password, "Passwords must match."))
	return errs
}
