package eventbus

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

const contentType = "application/cbor"

// AMQPBus publishes and consumes events over one AMQP channel. The channel is
// safe for the bus's own serialized use; construct one bus per channel.
type AMQPBus struct {
	ch    *amqp.Channel
	appID string
}

// NewAMQPBus wraps an open channel and puts it in confirm mode so that
// publishes can wait for broker acknowledgment.
func NewAMQPBus(ch *amqp.Channel, appID string) (*AMQPBus, error) {
	if ch == nil {
		return nil, fmt.Errorf("amqp channel is required")
	}
	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}
	return &AMQPBus{ch: ch, appID: appID}, nil
}

// DeclareExchange declares a durable fanout exchange. Only the service that
// owns an exchange may declare it; consumers of foreign exchanges must not.
func (b *AMQPBus) DeclareExchange(name string) error {
	if err := b.ch.ExchangeDeclare(name, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", name, err)
	}
	return nil
}

// Publish sends body to the named exchange with an empty routing key and
// blocks until the broker confirms the message. Success means durably queued,
// not merely sent.
func (b *AMQPBus) Publish(ctx context.Context, exchange string, body []byte) error {
	confirmation, err := b.ch.PublishWithDeferredConfirmWithContext(
		ctx,
		exchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType:  contentType,
			DeliveryMode: amqp.Persistent,
			AppId:        b.appID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish to exchange %s: %w", exchange, err)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("confirm publish to exchange %s: %w", exchange, err)
	}
	if !acked {
		return fmt.Errorf("publish to exchange %s: broker rejected message", exchange)
	}
	return nil
}

// QueueBind declares a durable, non-exclusive queue (idempotent when it
// already exists) and binds it to the named exchange with an empty routing
// key. The exchange itself is assumed to exist already.
func (b *AMQPBus) QueueBind(exchange, queue string) error {
	if _, err := b.ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}
	if err := b.ch.QueueBind(queue, "", exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s to exchange %s: %w", queue, exchange, err)
	}
	return nil
}

// Consume forwards every delivery on the queue to handler. A delivery is
// acknowledged only after the handler returns nil; handler errors are logged,
// the delivery is rejected without requeue, and consumption continues. The
// loop ends when ctx is cancelled or the channel closes.
func (b *AMQPBus) Consume(ctx context.Context, queue string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("event handler is required")
	}

	deliveries, err := b.ch.ConsumeWithContext(ctx, queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("register consumer for queue %s: %w", queue, err)
	}

	log.Printf("waiting for events from queue %s", queue)

	for delivery := range deliveries {
		if err := handler.OnEvent(ctx, delivery.Body); err != nil {
			log.Printf("handling event from queue %s: %v", queue, err)
			if err := delivery.Nack(false, false); err != nil {
				log.Printf("rejecting event on queue %s: %v", queue, err)
			}
			continue
		}
		if err := delivery.Ack(false); err != nil {
			log.Printf("acknowledging event on queue %s: %v", queue, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil
	}
	return fmt.Errorf("consume queue %s: channel closed", queue)
}
