// Package rabbitmq publishes order notifications to a RabbitMQ broker.
// The email worker that turns confirmation events into messages to the
// sender consumes them from the fanout exchange declared here.
package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"packtrack/internal/core/ports"

	"github.com/rabbitmq/amqp091-go"
)

// ConfirmationExchange is the fanout exchange order confirmations go to.
const ConfirmationExchange = "order_confirmations"

// orderConfirmationMessage is the wire form of a confirmation event.
type orderConfirmationMessage struct {
	RecipientEmail     string    `json:"recipient_email"`
	TrackCode          string    `json:"track_code"`
	PackageType        string    `json:"package_type"`
	RecipientName      string    `json:"recipient_name"`
	DestinationAddress string    `json:"destination_address"`
	PublishedAt        time.Time `json:"published_at"`
}

// OrderConfirmationPublisher implements ports.Notifier over an AMQP channel.
// Publishing is best effort by contract: callers fire it after the commit
// and only log failures.
type OrderConfirmationPublisher struct {
	ch *amqp091.Channel
}

// NewOrderConfirmationPublisher declares the confirmation exchange and
// returns a publisher bound to it.
func NewOrderConfirmationPublisher(ch *amqp091.Channel) (*OrderConfirmationPublisher, error) {
	err := ch.ExchangeDeclare(
		ConfirmationExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &OrderConfirmationPublisher{ch: ch}, nil
}

// PublishOrderConfirmation sends one confirmation event to the exchange.
func (p *OrderConfirmationPublisher) PublishOrderConfirmation(
	ctx context.Context,
	confirmation ports.OrderConfirmation,
) error {
	body, err := json.Marshal(orderConfirmationMessage{
		RecipientEmail:     confirmation.RecipientEmail,
		TrackCode:          confirmation.TrackCode,
		PackageType:        confirmation.PackageType,
		RecipientName:      confirmation.RecipientName,
		DestinationAddress: confirmation.DestinationAddress,
		PublishedAt:        time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx,
		ConfirmationExchange,
		"",    // fanout ignores the routing key
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}
