package services

import (
	"context"
	"log"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/queue"
	"github.com/Misheck-bot/transport-system-sub001/repository"
)

type AlertService struct {
	Repo   *repository.AlertRepository
	Events *queue.Publisher
}

func NewAlertService(repo *repository.AlertRepository, events *queue.Publisher) *AlertService {
	return &AlertService{Repo: repo, Events: events}
}

type RaiseAlertInput struct {
	Title    string
	Message  string
	Severity string
	DriverID *uint
	TruckID  *uint
}

func (s *AlertService) Raise(agentID uint, in RaiseAlertInput, photoPath string) (*entity.SecurityAlert, error) {
	severity := in.Severity
	if severity == "" {
		severity = "medium"
	}

	alert := &entity.SecurityAlert{
		Title:     in.Title,
		Message:   in.Message,
		Severity:  severity,
		PhotoPath: photoPath,
		Status:    entity.AlertActive,
		AgentID:   agentID,
		DriverID:  in.DriverID,
		TruckID:   in.TruckID,
	}
	if err := s.Repo.Create(alert); err != nil {
		return nil, err
	}

	if err := s.Events.AlertRaised(context.Background(), queue.AlertRaisedEvent{
		AlertID:  alert.ID,
		AgentID:  alert.AgentID,
		Title:    alert.Title,
		Severity: alert.Severity,
		RaisedAt: alert.CreatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("publish alert.raised failed: %v", err)
	}

	return alert, nil
}

func (s *AlertService) ListActive() ([]entity.SecurityAlert, error) {
	return s.Repo.FindByStatus(entity.AlertActive)
}
