package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never plaintext

	// Everything a user records is scoped to them
	Carriers            []Carrier            `gorm:"foreignKey:UserID" json:"carriers,omitempty"`
	DistributionCenters []DistributionCenter `gorm:"foreignKey:UserID" json:"distribution_centers,omitempty"`
	Loads               []Load               `gorm:"foreignKey:UserID" json:"loads,omitempty"`
}
