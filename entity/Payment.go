package entity

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses. pending → completed|failed is one-way.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// PaymentTypeECard is the payment type an e-card issuance requires.
const PaymentTypeECard = "E-Card Application"

type Payment struct {
	gorm.Model
	AmountCents    int64  `json:"amountCents"`
	Currency       string `json:"currency"`
	Type           string `gorm:"not null" json:"type"`
	Method         string `json:"method"`
	TransactionRef string `gorm:"uniqueIndex;not null" json:"transactionRef"`
	Status         string `gorm:"not null;default:pending" json:"status"`

	// SettleAt is persisted so a restart does not lose pending
	// settlements; the worker re-picks due rows on its next tick.
	SettleAt  *time.Time `gorm:"index" json:"settleAt,omitempty"`
	SettledAt *time.Time `json:"settledAt,omitempty"`

	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`
}
