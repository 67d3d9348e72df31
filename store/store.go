// Package store holds all database access. Entities stay plain data
// structs; every query the handlers need lives here as an explicit
// repository function on Store.
package store

import (
	"gorm.io/gorm"
)

// Store bundles the repository functions around a single gorm handle.
type Store struct {
	db *gorm.DB
}

// New wraps an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
