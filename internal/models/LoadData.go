package models

import (
	"gorm.io/gorm"
)

// LoadData holds the delivery outcome for exactly one Load. The row is
// inserted all-zero in the same transaction that creates its Load and
// is only ever updated afterwards, never re-inserted or deleted.
//
// Flag columns: 0 = NO, 1 = YES. Delivered mirrors the parent Load's
// delivered flag once the load is marked delivered.
type LoadData struct {
	gorm.Model
	LoadID uint `json:"load_id" gorm:"uniqueIndex;not null"`
	UserID uint `json:"user_id" gorm:"index;not null"`

	Ontime    int `json:"ontime" gorm:"default:0"`
	Damaged   int `json:"damaged" gorm:"default:0"`
	Breakdown int `json:"breakdown" gorm:"default:0"`

	Cost      int `json:"cost" gorm:"default:0"`
	Pallets   int `json:"pallets" gorm:"default:0"`
	Weight    int `json:"weight" gorm:"default:0"`
	Delivered int `json:"delivered" gorm:"default:0"`
}
