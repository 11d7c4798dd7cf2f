// internal/models/carrier.go
package models

import (
	"gorm.io/gorm"
)

// Carrier is a trucking/shipping vendor registered by a user.
// (name, address) is unique across the whole system, not per user,
// so two users cannot register the same physical carrier twice.
type Carrier struct {
	gorm.Model
	Name    string `json:"name" binding:"required" gorm:"not null;uniqueIndex:idx_carrier_name_address"`
	Address string `json:"address" binding:"required" gorm:"not null;uniqueIndex:idx_carrier_name_address"`
	City    string `json:"city" gorm:"not null"`
	State   string `json:"state" gorm:"not null"`
	Zip     string `json:"zip" gorm:"not null"`
	Phone   string `json:"phone" gorm:"not null"`
	UserID  uint   `json:"user_id" gorm:"index;not null"` // Owner

	Loads []Load `gorm:"foreignKey:CarrierID" json:"loads,omitempty"`
}
