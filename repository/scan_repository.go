package repository

import (
	"github.com/Misheck-bot/transport-system-sub001/entity"

	"gorm.io/gorm"
)

type ScanRepository struct {
	DB *gorm.DB
}

func NewScanRepository(db *gorm.DB) *ScanRepository {
	return &ScanRepository{DB: db}
}

func (r *ScanRepository) Create(tx *gorm.DB, scan *entity.EcardScan) error {
	return tx.Create(scan).Error
}

func (r *ScanRepository) FindByAgent(agentID uint, limit int) ([]entity.EcardScan, error) {
	var scans []entity.EcardScan
	err := r.DB.Where("agent_id = ?", agentID).Order("id DESC").Limit(limit).Find(&scans).Error
	return scans, err
}
