package store

import (
	"time"

	"sitetrack/models"
)

// InvoiceRow is an invoice joined with its vendor's name for display
// on the project overview.
type InvoiceRow struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"project_id"`
	VendorID    uint       `json:"vendor_id"`
	VendorName  string     `json:"vendor_name"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	InvoiceDate time.Time  `json:"invoice_date"`
	PaidDate    *time.Time `json:"paid_date"`
}

// Paid reports whether the invoice has been marked paid.
func (r *InvoiceRow) Paid() bool {
	return r.PaidDate != nil
}

// ListProjectInvoices returns all invoices for a project, newest
// first, with the vendor name joined in.
func (s *Store) ListProjectInvoices(projectID uint) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := s.db.Model(&models.Invoice{}).
		Select("invoices.id, invoices.project_id, invoices.vendor_id, vendors.name AS vendor_name, invoices.amount, invoices.description, invoices.invoice_date, invoices.paid_date").
		Joins("JOIN vendors ON vendors.id = invoices.vendor_id").
		Where("invoices.project_id = ?", projectID).
		Order("invoices.invoice_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateInvoice inserts a new invoice row.
func (s *Store) CreateInvoice(invoice *models.Invoice) error {
	return s.db.Create(invoice).Error
}
