package models

import (
	"time"
)

// Vendor is a counterparty that transactions and invoices are
// attributed to.
type Vendor struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:120;not null"`
	PhoneNumber string    `json:"phone_number" gorm:"size:64"`
	Email       string    `json:"email" gorm:"size:120"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name
func (Vendor) TableName() string {
	return "vendors"
}
