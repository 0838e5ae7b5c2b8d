package services

import (
	"strings"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/repository"
)

type TruckService struct {
	Repo *repository.TruckRepository
}

func NewTruckService(repo *repository.TruckRepository) *TruckService {
	return &TruckService{Repo: repo}
}

type RegisterTruckInput struct {
	PlateNumber string
	Make        string
	Model       string
	Year        int
	CapacityKg  int64
}

// Register creates a truck for the driver. Plates are unique across
// the whole fleet, compared in upper case.
func (s *TruckService) Register(driverID uint, in RegisterTruckInput) (*entity.Truck, error) {
	plate := strings.ToUpper(strings.TrimSpace(in.PlateNumber))

	count, err := s.Repo.CountByPlate(plate)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicatePlate
	}

	truck := &entity.Truck{
		PlateNumber: plate,
		Make:        strings.TrimSpace(in.Make),
		TruckModel:  strings.TrimSpace(in.Model),
		Year:        in.Year,
		CapacityKg:  in.CapacityKg,
		Status:      entity.TruckPendingVerification,
		DriverID:    driverID,
	}

	if err := s.Repo.Create(truck); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicatePlate
		}
		return nil, err
	}
	return truck, nil
}

func (s *TruckService) ListMine(driverID uint) ([]entity.Truck, error) {
	return s.Repo.FindByDriver(driverID)
}

func (s *TruckService) Get(driverID, truckID uint) (*entity.Truck, error) {
	truck, err := s.Repo.FindOwned(driverID, truckID)
	if err != nil {
		return nil, ErrNotFound
	}
	return truck, nil
}

// Update mutates an owned truck. The owner filter makes someone
// else's truck look absent rather than forbidden.
func (s *TruckService) Update(driverID, truckID uint, updates map[string]any) (*entity.Truck, error) {
	if plate, ok := updates["plate_number"].(string); ok {
		updates["plate_number"] = strings.ToUpper(strings.TrimSpace(plate))
	}

	affected, err := s.Repo.UpdateOwned(driverID, truckID, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.Repo.FindOwned(driverID, truckID)
}

func (s *TruckService) Delete(driverID, truckID uint) error {
	affected, err := s.Repo.DeleteOwned(driverID, truckID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
