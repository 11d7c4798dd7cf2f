package models

import (
	"gorm.io/gorm"
)

// Load is a single freight shipment header: identification, route,
// schedule and status. Each load belongs to one user, one carrier and
// one distribution center, and has exactly one LoadData row created
// alongside it.
//
// Temp and Team follow the original ledger convention of 0/1 integer
// flags rather than booleans; Delivered starts at 0 and is only ever
// flipped to 1 together with the paired LoadData row.
type Load struct {
	gorm.Model

	PO          string `json:"po" binding:"required"`
	Name        string `json:"name" binding:"required"`
	PickupCity  string `json:"pickup_city" binding:"required"`
	PickupState string `json:"pickup_state" binding:"required"`
	DueDate     string `json:"due_date"`
	DayOfWeek   string `json:"day_of_week"`
	Temp        int    `json:"temp"`
	Team        int    `json:"team"`
	Miles       int    `json:"miles" gorm:"default:0"` // 0 until the distance lookup succeeds
	Delivered   int    `json:"delivered" gorm:"default:0"`

	// Geocoded pickup location from the distance API, stored as a
	// WKB-encoded point (SRID 4326). Empty when the API returned no
	// coordinates.
	PickupGeom []byte `gorm:"type:bytea" json:"-"`

	UserID               uint `json:"user_id" gorm:"index;not null"`
	CarrierID            uint `json:"carrier_id" gorm:"index;not null"`
	DistributionCenterID uint `json:"distribution_center_id" gorm:"index;not null"`

	Data *LoadData `gorm:"foreignKey:LoadID" json:"data,omitempty"`
}
