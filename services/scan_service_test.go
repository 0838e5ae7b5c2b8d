package services

import (
	"errors"
	"testing"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/repository"
)

func TestRecordScanUpdatesCard(t *testing.T) {
	db := newTestDB(t)
	ecardRepo := repository.NewECardRepository(db)
	svc := NewScanService(db, repository.NewScanRepository(db), ecardRepo, nil)

	driver := seedUser(t, db, "d@example.com", entity.RoleDriver)
	agent := seedUser(t, db, "a@example.com", entity.RoleAgent)
	payment := seedCompletedPayment(t, db, driver.ID, entity.PaymentTypeECard)

	ecardSvc := NewECardService(db, ecardRepo)
	card, err := ecardSvc.Issue(driver.ID, entity.RoleDriver, payment.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := ecardSvc.Approve(card.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	scan, err := svc.Record(agent.ID, RecordScanInput{
		EcardID:    card.ID,
		DriverID:   driver.ID,
		BorderPost: "Chirundu Border",
		ScanType:   entity.ScanEntry,
	})
	if err != nil {
		t.Fatalf("record scan: %v", err)
	}
	if scan.Status != entity.ScanApproved {
		t.Fatalf("expected approved outcome, got %s", scan.Status)
	}

	got, err := ecardSvc.Get(driver.ID, card.ID)
	if err != nil {
		t.Fatalf("get card: %v", err)
	}
	if got.LastBorderPost != "Chirundu Border" {
		t.Fatalf("lastBorderPost = %q, want Chirundu Border", got.LastBorderPost)
	}
	if got.LastScanDate == nil {
		t.Fatal("lastScanDate not stamped")
	}
}

func TestRecordScanRejectsInactiveCard(t *testing.T) {
	db := newTestDB(t)
	ecardRepo := repository.NewECardRepository(db)
	svc := NewScanService(db, repository.NewScanRepository(db), ecardRepo, nil)

	driver := seedUser(t, db, "d@example.com", entity.RoleDriver)
	agent := seedUser(t, db, "a@example.com", entity.RoleAgent)
	payment := seedCompletedPayment(t, db, driver.ID, entity.PaymentTypeECard)

	// card stays pending_approval
	card, err := NewECardService(db, ecardRepo).Issue(driver.ID, entity.RoleDriver, payment.ID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = svc.Record(agent.ID, RecordScanInput{
		EcardID: card.ID, DriverID: driver.ID,
		BorderPost: "Chirundu Border", ScanType: entity.ScanEntry,
	})
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}

	// the rejected scan must leave no row behind
	var count int64
	db.Model(&entity.EcardScan{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no scan rows, got %d", count)
	}
}

func TestRecordScanRejectsWrongDriver(t *testing.T) {
	db := newTestDB(t)
	ecardRepo := repository.NewECardRepository(db)
	svc := NewScanService(db, repository.NewScanRepository(db), ecardRepo, nil)

	driver := seedUser(t, db, "d@example.com", entity.RoleDriver)
	other := seedUser(t, db, "o@example.com", entity.RoleDriver)
	agent := seedUser(t, db, "a@example.com", entity.RoleAgent)
	payment := seedCompletedPayment(t, db, driver.ID, entity.PaymentTypeECard)

	ecardSvc := NewECardService(db, ecardRepo)
	card, _ := ecardSvc.Issue(driver.ID, entity.RoleDriver, payment.ID)
	_ = ecardSvc.Approve(card.ID)

	_, err := svc.Record(agent.ID, RecordScanInput{
		EcardID: card.ID, DriverID: other.ID,
		BorderPost: "Chirundu Border", ScanType: entity.ScanEntry,
	})
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard for mismatched driver, got %v", err)
	}
}
