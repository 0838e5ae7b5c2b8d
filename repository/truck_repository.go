package repository

import (
	"github.com/Misheck-bot/transport-system-sub001/entity"

	"gorm.io/gorm"
)

type TruckRepository struct {
	DB *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{DB: db}
}

func (r *TruckRepository) CountByPlate(plate string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Truck{}).Where("plate_number = ?", plate).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TruckRepository) Create(truck *entity.Truck) error {
	return r.DB.Create(truck).Error
}

func (r *TruckRepository) FindByDriver(driverID uint) ([]entity.Truck, error) {
	var trucks []entity.Truck
	err := r.DB.Where("driver_id = ?", driverID).Order("id DESC").Find(&trucks).Error
	return trucks, err
}

// FindOwned scopes every lookup by owner so another driver's truck is
// indistinguishable from a missing one.
func (r *TruckRepository) FindOwned(driverID, truckID uint) (*entity.Truck, error) {
	var truck entity.Truck
	if err := r.DB.Where("id = ? AND driver_id = ?", truckID, driverID).First(&truck).Error; err != nil {
		return nil, err
	}
	return &truck, nil
}

func (r *TruckRepository) UpdateOwned(driverID, truckID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Truck{}).
		Where("id = ? AND driver_id = ?", truckID, driverID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteOwned hard-deletes so the plate leaves the unique index and
// can be registered again; a soft-deleted row would hold it forever.
func (r *TruckRepository) DeleteOwned(driverID, truckID uint) (int64, error) {
	res := r.DB.Unscoped().Where("id = ? AND driver_id = ?", truckID, driverID).Delete(&entity.Truck{})
	return res.RowsAffected, res.Error
}

func (r *TruckRepository) FindByStatus(status string) ([]entity.Truck, error) {
	var trucks []entity.Truck
	q := r.DB.Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&trucks).Error
	return trucks, err
}

// VerifyGuard moves a truck pending_verification → verified; zero
// affected rows means the truck is absent or already handled.
func (r *TruckRepository) VerifyGuard(truckID uint) (int64, error) {
	res := r.DB.Model(&entity.Truck{}).
		Where("id = ? AND status = ?", truckID, entity.TruckPendingVerification).
		Update("status", entity.TruckVerified)
	return res.RowsAffected, res.Error
}
