package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewCardNumber generates an e-card number from the issue timestamp
// plus a random suffix. Uniqueness is best effort; the unique index on
// the column turns a collision into a storage error instead of a
// silent duplicate.
func NewCardNumber() string {
	return fmt.Sprintf("EC-%d-%04d", time.Now().Unix(), rand.Intn(10000))
}

// NewTransactionRef returns a payment transaction reference.
func NewTransactionRef() string {
	return "TXN-" + uuid.NewString()
}
