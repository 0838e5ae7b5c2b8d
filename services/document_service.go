package services

import (
	"os"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/repository"
)

type DocumentService struct {
	Repo *repository.DocumentRepository
}

func NewDocumentService(repo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{Repo: repo}
}

func (s *DocumentService) Create(driverID uint, docType, path, contentType string, size int64, truckID *uint) (*entity.Document, error) {
	doc := &entity.Document{
		DocType:     docType,
		FilePath:    path,
		ContentType: contentType,
		SizeBytes:   size,
		DriverID:    driverID,
		TruckID:     truckID,
	}
	if err := s.Repo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) ListMine(driverID uint) ([]entity.Document, error) {
	return s.Repo.FindByDriver(driverID)
}

func (s *DocumentService) Delete(driverID, docID uint) error {
	docs, err := s.Repo.FindByDriver(driverID)
	if err != nil {
		return err
	}
	var path string
	for _, d := range docs {
		if d.ID == docID {
			path = d.FilePath
			break
		}
	}

	affected, err := s.Repo.DeleteOwned(driverID, docID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	if path != "" {
		_ = os.Remove(path)
	}
	return nil
}
