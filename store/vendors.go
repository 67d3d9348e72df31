package store

import (
	"sitetrack/models"
)

// ListVendors returns all vendors ordered by name.
func (s *Store) ListVendors() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := s.db.Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetVendor fetches a vendor by primary key.
func (s *Store) GetVendor(id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// GetVendorByName fetches a vendor by unique name.
func (s *Store) GetVendorByName(name string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.Where("name = ?", name).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// CreateVendor inserts a new vendor row.
func (s *Store) CreateVendor(vendor *models.Vendor) error {
	return s.db.Create(vendor).Error
}
