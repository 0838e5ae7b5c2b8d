package queue

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

var consumedQueues = []string{QueuePaymentSettled, QueueScanRecorded, QueueAlertRaised}

// StartConsumer connects to the broker and appends every domain event
// to logs/events.log. It runs a reconnect loop with backoff and never
// returns under normal operation; processing errors reject the
// message without requeueing to avoid tight loops.
func StartConsumer(url string) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("event-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn); err != nil {
			log.Printf("event-consumer: consume loop ended: %v; reconnecting", err)
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("event-consumer: set QoS failed: %v", err)
	}

	type delivery struct {
		queue string
		d     amqp.Delivery
	}
	merged := make(chan delivery)

	for _, name := range consumedQueues {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", name, err)
		}
		msgs, err := ch.Consume(name, "", false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("queue consume %s: %w", name, err)
		}
		go func(queue string, msgs <-chan amqp.Delivery) {
			for d := range msgs {
				merged <- delivery{queue: queue, d: d}
			}
		}(name, msgs)
	}

	closed := make(chan *amqp.Error, 1)
	conn.NotifyClose(closed)

	for {
		select {
		case <-closed:
			return errors.New("connection closed")
		case dv := <-merged:
			if err := appendEventLog(dv.queue, dv.d.Body); err != nil {
				log.Printf("event-consumer: handle message failed: %v", err)
				_ = dv.d.Nack(false, false)
				continue
			}
			_ = dv.d.Ack(false)
		}
	}
}

func appendEventLog(queue string, body []byte) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "events.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s %s\n", time.Now().UTC().Format(time.RFC3339), queue, body)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
