package services

import (
	"errors"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/repository"
	"github.com/Misheck-bot/transport-system-sub001/utils"

	"gorm.io/gorm"
)

// cardValidity is fixed at issuance: 730 days from the issue moment.
const cardValidity = 730 * 24 * time.Hour

// ECardService issues and tracks border-crossing credentials.
type ECardService struct {
	DB   *gorm.DB
	Repo *repository.ECardRepository
}

func NewECardService(db *gorm.DB, repo *repository.ECardRepository) *ECardService {
	return &ECardService{DB: db, Repo: repo}
}

// Issue creates an e-card backed by a completed payment.
// Preconditions, in order: the payment exists, belongs to the caller,
// is an e-card application and is completed (PaymentInvalid); and no
// card already references it (AlreadyIssued). The check runs in a
// transaction and the unique index on payment_id backstops the race;
// a duplicate-key failure maps to AlreadyIssued too.
func (s *ECardService) Issue(callerID uint, callerRole string, paymentID uint) (*entity.ECard, error) {
	var card *entity.ECard

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var payment entity.Payment
		if err := tx.Where("id = ? AND user_id = ?", paymentID, callerID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentInvalid
			}
			return err
		}
		if payment.Type != entity.PaymentTypeECard || payment.Status != entity.PaymentCompleted {
			return ErrPaymentInvalid
		}

		count, err := s.Repo.CountByPayment(tx, payment.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyIssued
		}

		status := entity.ECardPendingApproval
		if callerRole == entity.RoleAdmin {
			status = entity.ECardActive
		}

		now := time.Now()
		card = &entity.ECard{
			CardNumber: utils.NewCardNumber(),
			Status:     status,
			IssuedAt:   now,
			ExpiresAt:  now.Add(cardValidity),
			DriverID:   callerID,
			PaymentID:  payment.ID,
		}
		if err := s.Repo.Create(tx, card); err != nil {
			if isDuplicateKey(err) {
				return ErrAlreadyIssued
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *ECardService) ListMine(driverID uint) ([]entity.ECard, error) {
	return s.Repo.FindByDriver(driverID)
}

func (s *ECardService) Get(driverID, cardID uint) (*entity.ECard, error) {
	card, err := s.Repo.FindOwned(driverID, cardID)
	if err != nil {
		return nil, ErrNotFound
	}
	return card, nil
}

// Approve activates a pending card. Absent ids and cards in any other
// state both come back as not found.
func (s *ECardService) Approve(cardID uint) error {
	affected, err := s.Repo.ApproveGuard(cardID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
