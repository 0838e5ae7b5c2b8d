package services

import (
	"context"
	"log"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/queue"
	"github.com/Misheck-bot/transport-system-sub001/repository"

	"gorm.io/gorm"
)

// ScanService records border crossings against active e-cards.
type ScanService struct {
	DB     *gorm.DB
	Scans  *repository.ScanRepository
	ECards *repository.ECardRepository
	Events *queue.Publisher
}

func NewScanService(db *gorm.DB, scans *repository.ScanRepository, ecards *repository.ECardRepository, events *queue.Publisher) *ScanService {
	return &ScanService{DB: db, Scans: scans, ECards: ecards, Events: events}
}

type RecordScanInput struct {
	EcardID    uint
	DriverID   uint
	TruckID    *uint
	BorderPost string
	ScanType   string
	Notes      string
}

// Record checks the card and logs the crossing in one transaction: the
// card's last-seen fields are stamped with a guard on status=active,
// and zero affected rows aborts before the scan row exists. A crash
// can no longer leave the two writes half done.
func (s *ScanService) Record(agentID uint, in RecordScanInput) (*entity.EcardScan, error) {
	now := time.Now()
	scan := &entity.EcardScan{
		BorderPost: in.BorderPost,
		ScanType:   in.ScanType,
		Notes:      in.Notes,
		Status:     entity.ScanApproved,
		ScannedAt:  now,
		AgentID:    agentID,
		DriverID:   in.DriverID,
		EcardID:    in.EcardID,
		TruckID:    in.TruckID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.ECards.TouchActiveGuard(tx, in.EcardID, in.DriverID, in.BorderPost, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidCard
		}
		return s.Scans.Create(tx, scan)
	})
	if err != nil {
		return nil, err
	}

	if err := s.Events.ScanRecorded(context.Background(), queue.ScanRecordedEvent{
		ScanID:     scan.ID,
		EcardID:    scan.EcardID,
		AgentID:    scan.AgentID,
		DriverID:   scan.DriverID,
		BorderPost: scan.BorderPost,
		ScanType:   scan.ScanType,
		RecordedAt: now.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("publish scan.recorded failed: %v", err)
	}

	return scan, nil
}

func (s *ScanService) ListByAgent(agentID uint, limit int) ([]entity.EcardScan, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Scans.FindByAgent(agentID, limit)
}
