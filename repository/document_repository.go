package repository

import (
	"github.com/Misheck-bot/transport-system-sub001/entity"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	DB *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(doc *entity.Document) error {
	return r.DB.Create(doc).Error
}

func (r *DocumentRepository) FindByDriver(driverID uint) ([]entity.Document, error) {
	var docs []entity.Document
	err := r.DB.Where("driver_id = ?", driverID).Order("id DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) DeleteOwned(driverID, docID uint) (int64, error) {
	res := r.DB.Where("id = ? AND driver_id = ?", docID, driverID).Delete(&entity.Document{})
	return res.RowsAffected, res.Error
}
