package forms

import (
	"sitetrack/store"
)

// VendorForm is the /add_vendor submission.
type VendorForm struct {
	Name        string `form:"name"`
	PhoneNumber string `form:"phone_number"`
	Email       string `form:"email"`
}

// Validate checks the vendor form. Phone number and email are
// optional; the email shape is only checked when one was given.
func (f *VendorForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "name", f.Name, st, required("Vendor Name"), uniqueVendorName)
	if f.Email != "" {
		checkField(errs, "email", f.Email, st, validEmail)
	}
	return errs
}
