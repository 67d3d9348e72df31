// Package forms binds and validates the HTML form submissions. Basic
// coercion comes from gin's form binding; business rules are explicit
// per-field validator lists so every check is visible at the form
// definition, including the uniqueness checks that consult the store.
package forms

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"sitetrack/store"

	"gorm.io/gorm"
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// Errors maps a field name to its validation message. Empty map means
// the form is valid.
type Errors map[string]string

// Any reports whether any field failed validation.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Get returns the message for a field, or "" when it passed. Templates
// use this to render inline errors.
func (e Errors) Get(field string) string {
	return e[field]
}

// Validator checks one submitted value. The store handle is available
// for checks that need a lookup, such as uniqueness.
type Validator func(value string, st *store.Store) error

// checkField runs the validators for one field in order and records
// the first failure. Later validators can assume earlier ones passed.
func checkField(errs Errors, field, value string, st *store.Store, validators ...Validator) {
	if _, dup := errs[field]; dup {
		return
	}
	for _, v := range validators {
		if err := v(value, st); err != nil {
			errs[field] = err.Error()
			return
		}
	}
}

// required fails on empty or whitespace-only input.
func required(label string) Validator {
	return func(value string, _ *store.Store) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required.", label)
		}
		return nil
	}
}

// validEmail checks the address shape.
func validEmail(value string, _ *store.Store) error {
	if _, err := mail.ParseAddress(value); err != nil {
		return errors.New("Please enter a valid email address.")
	}
	return nil
}

// matches fails when the value differs from other.
func matches(other, message string) Validator {
	return func(value string, _ *store.Store) error {
		if value != other {
			return errors.New(message)
		}
		return nil
	}
}

// validFloat checks that the value parses as a number.
func validFloat(value string, _ *store.Store) error {
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return errors.New("Please enter a number.")
	}
	return nil
}

// validDate checks that the value parses as a YYYY-MM-DD date.
func validDate(value string, _ *store.Store) error {
	if _, err := time.ParseInLocation(DateLayout, value, time.Local); err != nil {
		return errors.New("Please enter a date as YYYY-MM-DD.")
	}
	return nil
}

// uniqueUsername fails when a user with this username already exists.
func uniqueUsername(value string, st *store.Store) error {
	if _, err := st.GetUserByUsername(value); err == nil {
		return errors.New("Please use a different username.")
	}
	return nil
}

// uniqueEmail fails when a user with this email already exists.
func uniqueEmail(value string, st *store.Store) error {
	if _, err := st.GetUserByEmail(value); err == nil {
		return errors.New("Please use a different email address.")
	}
	return nil
}

// uniqueProjectName fails when a project with this name already exists.
func uniqueProjectName(value string, st *store.Store) error {
	if _, err := st.GetProjectByName(value); err == nil {
		return errors.New("This project name is already in use.")
	}
	return nil
}

// uniqueVendorName fails when a vendor with this name already exists.
func uniqueVendorName(value string, st *store.Store) error {
	if _, err := st.GetVendorByName(value); err == nil {
		return errors.New("This vendor name is already in use.")
	}
	return nil
}

// lookupVendor resolves a vendor name to its row. A transaction or
// invoice is never written against a vendor that does not exist.
func lookupVendor(value string, st *store.Store) (uint, error) {
	vendor, err := st.GetVendorByName(value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("No vendor with that name exists.")
		}
		return 0, errors.New("Could not look up the vendor.")
	}
	return vendor.ID, nil
}

// parseFloat converts after validFloat has passed.
func parseFloat(value string) float64 {
	f, _ := strconv.ParseFloat(value, 64)
	return f
}

// parseDate converts after validDate has passed.
func parseDate(value string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, value, time.Local)
	return t
}
