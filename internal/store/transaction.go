package store

import (
	"gorm.io/gorm"
)

// DoInTx runs fn inside a transaction and rolls back on any error.
// Writes that must land together, like the status guard plus its
// notification row lookups or a milestone order check plus insert, go
// through here. Typed errors from fn pass through unchanged so the
// handlers can map them to status codes.
func DoInTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	err := fn(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
