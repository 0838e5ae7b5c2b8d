package repository

import (
	"github.com/Misheck-bot/transport-system-sub001/entity"

	"gorm.io/gorm"
)

type AlertRepository struct {
	DB *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{DB: db}
}

func (r *AlertRepository) Create(alert *entity.SecurityAlert) error {
	return r.DB.Create(alert).Error
}

func (r *AlertRepository) FindByStatus(status string) ([]entity.SecurityAlert, error) {
	var alerts []entity.SecurityAlert
	err := r.DB.Where("status = ?", status).Order("id DESC").Find(&alerts).Error
	return alerts, err
}
