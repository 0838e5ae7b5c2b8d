package entity

import (
	"gorm.io/gorm"
)

// Roles recognized by the system. There is no hierarchy: every route
// names the exact roles it accepts.
const (
	RoleDriver = "driver"
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
)

// Account statuses an agent or admin can put a driver into.
const (
	UserActive    = "active"
	UserSuspended = "suspended"
	UserFlagged   = "flagged"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:driver" json:"role"`
	IsVerified  bool   `gorm:"not null;default:false" json:"isVerified"`
	Status      string `gorm:"not null;default:active" json:"status"`

	// driver profile
	LicenseNumber string `json:"licenseNumber,omitempty"`
	LicenseClass  string `json:"licenseClass,omitempty"`

	// agent profile
	BadgeNumber string `json:"badgeNumber,omitempty"`
	BorderPost  string `json:"borderPost,omitempty"`

	// admin profile
	AccessLevel string `json:"accessLevel,omitempty"`

	// Relations — preload only when needed
	Trucks    []Truck     `gorm:"foreignKey:DriverID" json:"-"`
	Documents []Document  `gorm:"foreignKey:DriverID" json:"-"`
	Payments  []Payment   `gorm:"foreignKey:UserID" json:"-"`
	ECards    []ECard     `gorm:"foreignKey:DriverID" json:"-"`
	Scans     []EcardScan `gorm:"foreignKey:DriverID" json:"-"`
}
