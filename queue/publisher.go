package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends domain events to RabbitMQ. A nil Publisher (no
// broker configured) is valid and publishes nothing; publish failures
// are logged and returned so callers can ignore them without
// interrupting the request flow.
type Publisher struct {
	url string
}

// NewPublisher returns nil when url is empty.
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

func (p *Publisher) PaymentSettled(ctx context.Context, ev PaymentSettledEvent) error {
	return p.publish(ctx, QueuePaymentSettled, ev)
}

func (p *Publisher) ScanRecorded(ctx context.Context, ev ScanRecordedEvent) error {
	return p.publish(ctx, QueueScanRecorded, ev)
}

func (p *Publisher) AlertRaised(ctx context.Context, ev AlertRaisedEvent) error {
	return p.publish(ctx, QueueAlertRaised, ev)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
