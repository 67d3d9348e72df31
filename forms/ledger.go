package forms

import (
	"time"

	"sitetrack/store"
)

// TransactionForm is the /projects/<id>/add_transaction submission.
// The vendor is entered by name and resolved to a foreign key during
// validation; an unknown name is a field error, not a silent null.
type TransactionForm struct {
	Vendor      string `form:"vendor"`
	Date        string `form:"date"`
	Amount      string `form:"amount"`
	Description string `form:"description"`

	// Filled in by Validate.
	VendorID    uint      `form:"-"`
	DateValue   time.Time `form:"-"`
	AmountValue float64   `form:"-"`
}

// Validate checks the transaction form and resolves the vendor.
func (f *TransactionForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "vendor", f.Vendor, st, required("Vendor Name"))
	checkField(errs, "date", f.Date, st, required("Transaction Date"), validDate)
	checkField(errs, "amount", f.Amount, st, required("Amount"), validFloat)
	checkField(errs, "description", f.Description, st, required("Description"))
	if errs.Any() {
		return errs
	}

	vendorID, err := lookupVendor(f.Vendor, st)
	if err != nil {
		errs["vendor"] = err.Error()
		return errs
	}

	f.VendorID = vendorID
	f.DateValue = parseDate(f.Date)
	f.AmountValue = parseFloat(f.Amount)
	return errs
}

// InvoiceForm is the /projects/<id>/add_invoice submission. PaidDate
// is optional; an empty value records the invoice as unpaid.
type InvoiceForm struct {
	Vendor      string `form:"vendor"`
	InvoiceDate string `form:"invoice_date"`
	PaidDate    string `form:"paid_date"`
	Amount      string `form:"amount"`
	Description string `form:"description"`

	// Filled in by Validate.
	VendorID         uint       `form:"-"`
	InvoiceDateValue time.Time  `form:"-"`
	PaidDateValue    *time.Time `form:"-"`
	AmountValue      float64    `form:"-"`
}

// Validate checks the invoice form and resolves the vendor.
func (f *InvoiceForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "vendor", f.Vendor, st, required("Vendor Name"))
	checkField(errs, "invoice_date", f.InvoiceDate, st, required("Invoice Date"), validDate)
	if f.PaidDate != "" {
		checkField(errs, "paid_date", f.PaidDate, st, validDate)
	}
	checkField(errs, "amount", f.Amount, st, required("Amount"), validFloat)
	checkField(errs, "description", f.Description, st, required("Description"))
	if errs.Any() {
		return errs
	}

	vendorID, err := lookupVendor(f.Vendor, st)
	if err != nil {
		errs["vendor"] = err.Error()
		return errs
	}

	f.VendorID = vendorID
	f.InvoiceDateValue = parseDate(f.InvoiceDate)
	if f.PaidDate != "" {
		paid := parseDate(f.PaidDate)
		f.PaidDateValue = &paid
	}
	f.AmountValue = parseFloat(f.Amount)
	return errs
}
