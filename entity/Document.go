package entity

import (
	"gorm.io/gorm"
)

// Document is an uploaded driver paper (license copy, insurance,
// transit permit). The file itself lives under uploads/documents.
type Document struct {
	gorm.Model
	DocType     string `gorm:"not null" json:"docType"`
	FilePath    string `json:"-"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`

	DriverID uint  `gorm:"index;not null" json:"driverId"`
	Driver   User  `json:"-"`
	TruckID  *uint `json:"truckId,omitempty"`
	Truck    *Truck `json:"-"`
}
