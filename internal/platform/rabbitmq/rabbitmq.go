package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerPrefix = "price-tracker-"

// HandlerFunc is function which handles messages.
type HandlerFunc func(ctx context.Context, message []byte) error

// Option is custom configuration of RabbitMQ.
type Option func(mq *RabbitMQ)

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	prefetch  int
	isRunning chan struct{}
}

// NewRabbitMQ returns new RabbitMQ using new channel of provided connection.
func NewRabbitMQ(connection *amqp.Connection, exchange string, ops ...Option) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	mq := RabbitMQ{
		channel:   channel,
		exchange:  exchange,
		prefetch:  1,
		isRunning: make(chan struct{}),
	}

	for _, op := range ops {
		op(&mq)
	}

	if err := channel.Qos(mq.prefetch, 0, false); err != nil {
		return nil, fmt.Errorf("can't set channel prefetch: %w", err)
	}

	return &mq, nil
}

// DeclareQueue declares durable direct exchange and queue bound to it with routing key.
func (mq *RabbitMQ) DeclareQueue(queue, routingKey string) error {
	if err := mq.channel.ExchangeDeclare(mq.exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare exchange %q: %w", mq.exchange, err)
	}

	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue %q: %w", queue, err)
	}

	if err := mq.channel.QueueBind(queue, routingKey, mq.exchange, false, nil); err != nil {
		return fmt.Errorf("can't bind queue %q: %w", queue, err)
	}

	return nil
}

// Publish publishes persistent message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         message,
	}

	if err := mq.channel.PublishWithContext(ctx, mq.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("can't publish message: %w", err)
	}

	return nil
}

// Consume consumes messages from queue and passes deliveries to provided handler function.
// It returns channel with errors from handler function and consuming process.
// Function works asynchronously, it consumes messages in background until context is done,
// then Done channel is closed.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}
	consumer := consumerPrefix + consumerID.String()

	deliveries, err := mq.channel.Consume(
		queue,
		consumer,
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming: %w", err)
	}

	consumingErrors := make(chan error)
	go func() {
		defer close(mq.isRunning)
		defer close(consumingErrors)

		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)

		// stop deliveries, unacked messages are requeued by broker
		_ = mq.channel.Cancel(consumer, false)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for {
		var (
			delivery amqp.Delivery
			ok       bool
		)

		select {
		case <-ctx.Done():
			return
		case delivery, ok = <-deliveries:
			if !ok {
				return
			}
		}

		if err := handler(ctx, delivery.Body); err != nil {
			// message interrupted by shutdown goes back to queue
			requeue := ctx.Err() != nil
			_ = pushError(ctx, fmt.Errorf("message %s: %w", delivery.MessageId, err), consumingErrors)
			if err := mq.settle(ctx, "nack", delivery.Nack(false, requeue), consumingErrors); err != nil {
				return
			}
			continue
		}

		if err := mq.settle(ctx, "ack", delivery.Ack(false), consumingErrors); err != nil {
			return
		}
	}
}

// settle reports acknowledgement error. It returns error only when reporting was interrupted.
func (mq *RabbitMQ) settle(ctx context.Context, action string, err error, consumingErrors chan error) error {
	if err == nil {
		return nil
	}

	return pushError(ctx, fmt.Errorf("can't %s message: %w", action, err), consumingErrors)
}

// Done returns channel which will be closed when consuming will be finished.
func (mq *RabbitMQ) Done() <-chan struct{} {
	return mq.isRunning
}

// Close closes RabbitMQ channel.
func (mq *RabbitMQ) Close() error {
	if err := mq.channel.Close(); err != nil {
		return fmt.Errorf("can't close channel: %w", err)
	}

	return nil
}

// WithPrefetch sets number of unacknowledged messages delivered to consumer.
func WithPrefetch(count int) Option {
	return func(mq *RabbitMQ) {
		mq.prefetch = count
	}
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
