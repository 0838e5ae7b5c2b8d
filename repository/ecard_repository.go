package repository

import (
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"

	"gorm.io/gorm"
)

type ECardRepository struct {
	DB *gorm.DB
}

func NewECardRepository(db *gorm.DB) *ECardRepository {
	return &ECardRepository{DB: db}
}

func (r *ECardRepository) Create(tx *gorm.DB, card *entity.ECard) error {
	return tx.Create(card).Error
}

func (r *ECardRepository) CountByPayment(tx *gorm.DB, paymentID uint) (int64, error) {
	var count int64
	err := tx.Model(&entity.ECard{}).Where("payment_id = ?", paymentID).Count(&count).Error
	return count, err
}

func (r *ECardRepository) FindByDriver(driverID uint) ([]entity.ECard, error) {
	var cards []entity.ECard
	err := r.DB.Where("driver_id = ?", driverID).Order("id DESC").Find(&cards).Error
	return cards, err
}

func (r *ECardRepository) FindOwned(driverID, cardID uint) (*entity.ECard, error) {
	var card entity.ECard
	if err := r.DB.Where("id = ? AND driver_id = ?", cardID, driverID).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// ApproveGuard moves a card pending_approval → active.
func (r *ECardRepository) ApproveGuard(cardID uint) (int64, error) {
	res := r.DB.Model(&entity.ECard{}).
		Where("id = ? AND status = ?", cardID, entity.ECardPendingApproval).
		Update("status", entity.ECardActive)
	return res.RowsAffected, res.Error
}

// TouchActiveGuard stamps the last-seen fields, but only while the
// card is active; zero affected rows rejects the scan.
func (r *ECardRepository) TouchActiveGuard(tx *gorm.DB, cardID, driverID uint, post string, at time.Time) (int64, error) {
	res := tx.Model(&entity.ECard{}).
		Where("id = ? AND driver_id = ? AND status = ?", cardID, driverID, entity.ECardActive).
		Updates(map[string]any{"last_scan_date": at, "last_border_post": post})
	return res.RowsAffected, res.Error
}
