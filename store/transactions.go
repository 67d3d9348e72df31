package store

import (
	"time"

	"sitetrack/models"
)

// TransactionRow is a transaction joined with its vendor's name for
// display on the project overview.
type TransactionRow struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	VendorID    uint      `json:"vendor_id"`
	VendorName  string    `json:"vendor_name"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

// ListProjectTransactions returns all transactions for a project,
// newest first, with the vendor name joined in.
func (s *Store) ListProjectTransactions(projectID uint) ([]TransactionRow, error) {
	var rows []TransactionRow
	err := s.db.Model(&models.ProjectTransaction{}).
		Select("project_transactions.id, project_transactions.project_id, project_transactions.vendor_id, vendors.name AS vendor_name, project_transactions.date, project_transactions.amount, project_transactions.description").
		Joins("JOIN vendors ON vendors.id = project_transactions.vendor_id").
		Where("project_transactions.project_id = ?", projectID).
		Order("project_transactions.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateTransaction inserts a new transaction row.
func (s *Store) CreateTransaction(tx *models.ProjectTransaction) error {
	return s.db.Create(tx).Error
}

// TotalSpent sums transaction amounts for a project. A project with no
// transactions totals zero.
func (s *Store) TotalSpent(projectID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.ProjectTransaction{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
