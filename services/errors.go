package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Domain errors the controllers translate into HTTP responses.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrDuplicatePlate     = errors.New("plate number already registered")
	ErrNotFound           = errors.New("not found")
	ErrPaymentInvalid     = errors.New("no completed e-card application payment found")
	ErrAlreadyIssued      = errors.New("payment already used for an e-card")
	ErrInvalidCard        = errors.New("e-card not found or not active")
)

// isDuplicateKey reports whether a create failed on a unique index, so
// check-then-create paths can answer the domain conflict instead of a
// raw storage error when the check races.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite reports constraint violations as plain errors
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
