// internal/models/distribution_center.go
package models

import (
	"gorm.io/gorm"
)

// DistributionCenter is a load destination facility registered by a user.
// Same system-wide (name, address) uniqueness policy as Carrier.
type DistributionCenter struct {
	gorm.Model
	Name    string `json:"name" binding:"required" gorm:"not null;uniqueIndex:idx_dc_name_address"`
	Address string `json:"address" binding:"required" gorm:"not null;uniqueIndex:idx_dc_name_address"`
	City    string `json:"city" gorm:"not null"`
	State   string `json:"state" gorm:"not null"`
	Zip     string `json:"zip" gorm:"not null"`
	Phone   string `json:"phone" gorm:"not null"`
	UserID  uint   `json:"user_id" gorm:"index;not null"` // Owner

	Loads []Load `gorm:"foreignKey:DistributionCenterID" json:"loads,omitempty"`
}
