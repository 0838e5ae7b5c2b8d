// Package queue defines the message payloads exchanged over the
// broker and the background consumer that logs them.
package queue

// Queue names. Durable; declared idempotently by both sides.
const (
	QueuePaymentSettled = "payment.settled"
	QueueScanRecorded   = "scan.recorded"
	QueueAlertRaised    = "alert.raised"
)

// PaymentSettledEvent is published when the settlement worker (or an
// admin adjudication) resolves a payment.
type PaymentSettledEvent struct {
	PaymentID      uint   `json:"payment_id"`
	UserID         uint   `json:"user_id"`
	TransactionRef string `json:"transaction_ref"`
	Status         string `json:"status"`
	AmountCents    int64  `json:"amount_cents"`
	Currency       string `json:"currency"`
	SettledAt      string `json:"settled_at"`
}

// ScanRecordedEvent is published after a border scan is accepted.
type ScanRecordedEvent struct {
	ScanID     uint   `json:"scan_id"`
	EcardID    uint   `json:"ecard_id"`
	AgentID    uint   `json:"agent_id"`
	DriverID   uint   `json:"driver_id"`
	BorderPost string `json:"border_post"`
	ScanType   string `json:"scan_type"`
	RecordedAt string `json:"recorded_at"`
}

// AlertRaisedEvent is published when an agent raises a security alert.
type AlertRaisedEvent struct {
	AlertID  uint   `json:"alert_id"`
	AgentID  uint   `json:"agent_id"`
	Title    string `json:"title"`
	Severity string `json:"severity"`
	RaisedAt string `json:"raised_at"`
}
