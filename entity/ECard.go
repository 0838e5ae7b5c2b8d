package entity

import (
	"time"

	"gorm.io/gorm"
)

// E-card statuses. pending_approval → active happens through the admin
// approval endpoint; active → expired is a stored date, not polled.
const (
	ECardPendingApproval = "pending_approval"
	ECardActive          = "active"
	ECardSuspended       = "suspended"
	ECardExpired         = "expired"
)

type ECard struct {
	gorm.Model
	CardNumber string    `gorm:"uniqueIndex;not null" json:"cardNumber"`
	Status     string    `gorm:"not null;default:pending_approval" json:"status"`
	IssuedAt   time.Time `json:"issuedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`

	// LastScanDate/LastBorderPost are written only by scan recording.
	LastScanDate   *time.Time `json:"lastScanDate,omitempty"`
	LastBorderPost string     `json:"lastBorderPost,omitempty"`

	DriverID uint `gorm:"index;not null" json:"driverId"`
	Driver   User `json:"-"`

	// One card per payment; the unique index closes the issuance race.
	PaymentID uint    `gorm:"uniqueIndex;not null" json:"paymentId"`
	Payment   Payment `json:"-"`

	Scans []EcardScan `gorm:"foreignKey:EcardID" json:"-"`
}

func (ECard) TableName() string { return "ecards" }
