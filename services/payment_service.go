package services

import (
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/repository"
	"github.com/Misheck-bot/transport-system-sub001/utils"
)

// PaymentService records payment intents. Settlement itself is the
// worker's job; a client learns the outcome by re-querying.
type PaymentService struct {
	Repo        *repository.PaymentRepository
	SettleDelay time.Duration
}

func NewPaymentService(repo *repository.PaymentRepository, settleDelay time.Duration) *PaymentService {
	return &PaymentService{Repo: repo, SettleDelay: settleDelay}
}

type InitiatePaymentInput struct {
	Type   string
	Amount string // currency-prefixed, e.g. "K500"
	Method string
}

func (s *PaymentService) Initiate(userID uint, in InitiatePaymentInput) (*entity.Payment, error) {
	cents, currency, err := utils.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	due := time.Now().Add(s.SettleDelay)
	p := &entity.Payment{
		AmountCents:    cents,
		Currency:       currency,
		Type:           in.Type,
		Method:         in.Method,
		TransactionRef: utils.NewTransactionRef(),
		Status:         entity.PaymentPending,
		SettleAt:       &due,
		UserID:         userID,
	}

	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) ListMine(userID uint) ([]entity.Payment, error) {
	return s.Repo.FindByUser(userID)
}

func (s *PaymentService) Get(userID, paymentID uint) (*entity.Payment, error) {
	p, err := s.Repo.FindOwned(userID, paymentID)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Adjudicate lets an admin resolve a pending payment by hand. The
// pending guard keeps the transition one-way.
func (s *PaymentService) Adjudicate(paymentID uint, status string) error {
	affected, err := s.Repo.SettleGuard(paymentID, status, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
