package models

import (
	"time"
)

// Invoice is a billed amount from a vendor against a project.
// PaidDate is nil while the invoice is unpaid.
type Invoice struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ProjectID   uint       `json:"project_id" gorm:"index;not null"`
	VendorID    uint       `json:"vendor_id" gorm:"index;not null"`
	Amount      float64    `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description string     `json:"description" gorm:"size:256"`
	InvoiceDate time.Time  `json:"invoice_date" gorm:"index;not null"`
	PaidDate    *time.Time `json:"paid_date" gorm:"index"`
	CreatedAt   time.Time  `json:"created_at"`
	Project     Project    `json:"-" gorm:"foreignKey:ProjectID"`
	Vendor      Vendor     `json:"-" gorm:"foreignKey:VendorID"`
}

// TableName sets the table name
func (Invoice) TableName() string {
	return "invoices"
}

// IsPaid reports whether the invoice has been marked paid.
func (i *Invoice) IsPaid() bool {
	return i.PaidDate != nil
}
