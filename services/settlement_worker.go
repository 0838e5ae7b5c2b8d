package services

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/queue"
	"github.com/Misheck-bot/transport-system-sub001/repository"
)

// successRate is the simulated gateway outcome; swap the worker body
// for the real webhook handler when the gateway integration lands.
const successRate = 0.9

// SettlementWorker resolves pending payments whose due time has
// passed. Due times live in the payments table, so pending settlements
// survive a restart: the next tick simply re-picks them.
type SettlementWorker struct {
	Repo     *repository.PaymentRepository
	Events   *queue.Publisher
	Interval time.Duration

	// overridable in tests
	randFloat func() float64
}

func NewSettlementWorker(repo *repository.PaymentRepository, events *queue.Publisher) *SettlementWorker {
	return &SettlementWorker{
		Repo:      repo,
		Events:    events,
		Interval:  time.Second,
		randFloat: rand.Float64,
	}
}

// Run polls until the context is cancelled.
func (w *SettlementWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.Println("💳 settlement worker started")
	for {
		select {
		case <-ctx.Done():
			log.Println("settlement worker stopped")
			return
		case <-ticker.C:
			if err := w.SettleDue(ctx, time.Now()); err != nil {
				log.Printf("settlement tick failed: %v", err)
			}
		}
	}
}

// SettleDue resolves every due pending payment once. The guard on
// status=pending makes a second worker (or an admin adjudicating the
// same row) lose cleanly.
func (w *SettlementWorker) SettleDue(ctx context.Context, now time.Time) error {
	due, err := w.Repo.DuePending(now)
	if err != nil {
		return err
	}

	for _, p := range due {
		status := entity.PaymentCompleted
		if w.randFloat() >= successRate {
			status = entity.PaymentFailed
		}

		affected, err := w.Repo.SettleGuard(p.ID, status, now)
		if err != nil {
			log.Printf("settle payment %d failed: %v", p.ID, err)
			continue
		}
		if affected == 0 {
			continue // someone else got there first
		}

		log.Printf("💳 payment %s settled: %s", p.TransactionRef, status)
		if err := w.Events.PaymentSettled(ctx, queue.PaymentSettledEvent{
			PaymentID:      p.ID,
			UserID:         p.UserID,
			TransactionRef: p.TransactionRef,
			Status:         status,
			AmountCents:    p.AmountCents,
			Currency:       p.Currency,
			SettledAt:      now.UTC().Format(time.RFC3339),
		}); err != nil {
			log.Printf("publish payment.settled failed: %v", err)
		}
	}
	return nil
}
