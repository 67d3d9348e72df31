package models

import (
	"time"
)

// ProjectTransaction is a recorded expenditure against a project,
// attributed to a vendor.
type ProjectTransaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProjectID   uint      `json:"project_id" gorm:"index;not null"`
	VendorID    uint      `json:"vendor_id" gorm:"index;not null"`
	Date        time.Time `json:"date" gorm:"index;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	Description string    `json:"description" gorm:"size:256"`
	CreatedAt   time.Time `json:"created_at"`
	Project     Project   `json:"-" gorm:"foreignKey:ProjectID"`
	Vendor      Vendor    `json:"-" gorm:"foreignKey:VendorID"`
}

// TableName sets the table name
func (ProjectTransaction) TableName() string {
	return "project_transactions"
}
