package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Truck{}, &entity.Document{},
		&entity.Payment{},
		&entity.ECard{}, &entity.EcardScan{},
		&entity.SecurityAlert{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:     email,
		Password:  "x",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		Status:    entity.UserActive,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCompletedPayment(t *testing.T, db *gorm.DB, userID uint, typ string) *entity.Payment {
	t.Helper()
	now := time.Now()
	p := &entity.Payment{
		AmountCents:    50000,
		Currency:       "ZMW",
		Type:           typ,
		Method:         "mobile",
		TransactionRef: fmt.Sprintf("TXN-test-%d-%d", userID, now.UnixNano()),
		Status:         entity.PaymentCompleted,
		SettledAt:      &now,
		UserID:         userID,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return p
}
