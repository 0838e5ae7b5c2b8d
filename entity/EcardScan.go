package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	ScanEntry = "entry"
	ScanExit  = "exit"
)

// Scan outcome. Every code path writes approved; the column exists for
// a rejection workflow that was never wired up.
const ScanApproved = "approved"

// EcardScan is an append-only record of a border crossing check.
type EcardScan struct {
	gorm.Model
	BorderPost string    `gorm:"not null" json:"borderPost"`
	ScanType   string    `gorm:"not null" json:"scanType"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `gorm:"not null;default:approved" json:"status"`
	ScannedAt  time.Time `json:"scannedAt"`

	AgentID  uint  `gorm:"index;not null" json:"agentId"`
	Agent    User  `json:"-"`
	DriverID uint  `gorm:"index;not null" json:"driverId"`
	Driver   User  `json:"-"`
	EcardID  uint  `gorm:"index;not null" json:"ecardId"`
	Ecard    ECard `json:"-"`
	TruckID  *uint `json:"truckId,omitempty"`
	Truck    *Truck `json:"-"`
}

func (EcardScan) TableName() string { return "ecard_scans" }
