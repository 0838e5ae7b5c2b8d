package entity

import (
	"gorm.io/gorm"
)

const (
	TruckPendingVerification = "pending_verification"
	TruckVerified            = "verified"
)

type Truck struct {
	gorm.Model
	PlateNumber string `gorm:"uniqueIndex;not null" json:"plateNumber"`
	Make        string `json:"make"`
	TruckModel  string `gorm:"column:truck_model" json:"model"`
	Year        int    `json:"year"`
	CapacityKg  int64  `json:"capacityKg"`
	Status      string `gorm:"not null;default:pending_verification" json:"status"`

	DriverID uint `gorm:"index;not null" json:"driverId"`
	Driver   User `json:"-"` // preload only when the owner's detail is needed

	Documents []Document `gorm:"foreignKey:TruckID" json:"-"`
}
