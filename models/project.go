package models

import (
	"time"
)

// Project is a tracked initiative with a budget, accumulating
// transactions and invoices.
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:120;not null"`
	Budget    float64   `json:"budget" gorm:"type:decimal(12,2)"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name
func (Project) TableName() string {
	return "projects"
}
