package repository

import (
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByUser(userID uint) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) FindOwned(userID, paymentID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("id = ? AND user_id = ?", paymentID, userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// DuePending returns pending payments whose settle time has passed.
func (r *PaymentRepository) DuePending(now time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.DB.Where("status = ? AND settle_at IS NOT NULL AND settle_at <= ?", entity.PaymentPending, now).
		Find(&payments).Error
	return payments, err
}

// SettleGuard flips a payment out of pending. The status filter makes
// the transition one-way even if two workers race on the same row.
func (r *PaymentRepository) SettleGuard(paymentID uint, status string, at time.Time) (int64, error) {
	res := r.DB.Model(&entity.Payment{}).
		Where("id = ? AND status = ?", paymentID, entity.PaymentPending).
		Updates(map[string]any{"status": status, "settled_at": at})
	return res.RowsAffected, res.Error
}

func (r *PaymentRepository) FindPage(status string, limit, offset int) ([]entity.Payment, int64, error) {
	q := r.DB.Model(&entity.Payment{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []entity.Payment
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&payments).Error
	return payments, total, err
}
