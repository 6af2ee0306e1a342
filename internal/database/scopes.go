package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows belonging to the given user. Every
// resource query goes through this filter; the auth middleware alone is not
// the tenant boundary.
func OwnedBy(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
