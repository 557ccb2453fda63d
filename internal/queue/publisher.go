package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends reservation events. Implementations never retry.
type Publisher interface {
	Publish(ctx context.Context, queue string, event ReservationEvent) error
}

// AMQPPublisher dials the broker for every message; reservation traffic is
// low and this keeps no connection state across requests.
type AMQPPublisher struct {
	URL string
}

func (p AMQPPublisher) Publish(ctx context.Context, queue string, event ReservationEvent) error {
	conn, err := amqp.Dial(p.URL)
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

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

// LogPublisher is used when RABBITMQ_URL is not configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, queue string, event ReservationEvent) error {
	log.Printf("[QUEUE] queue=%s reservation_id=%d status=%s (broker tidak dikonfigurasi)", queue, event.ReservationID, event.Status)
	return nil
}

// NewPublisher picks the AMQP publisher when a broker URL is configured.
func NewPublisher(url string) Publisher {
	if url == "" {
		return LogPublisher{}
	}
	return AMQPPublisher{URL: url}
}
