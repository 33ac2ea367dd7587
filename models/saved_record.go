package models

import "gorm.io/gorm"

// SavedRecord is a food the user pinned to their personal store.
// The composite unique index keeps concurrent saves from creating duplicates;
// the service-level existence check only provides the friendly answer.
type SavedRecord struct {
	gorm.Model
	UserID      uint   `gorm:"uniqueIndex:idx_saved_records_owner_food;not null" json:"user_id"`
	FdcID       int64  `gorm:"uniqueIndex:idx_saved_records_owner_food;not null" json:"fdc_id"`
	Description string `gorm:"uniqueIndex:idx_saved_records_owner_food;not null" json:"description"`
}
