package commander

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockery --name Publisher --filename publisher.go

// ErrEmptyMessage is returned when there is no command to publish.
var ErrEmptyMessage = errors.New("message can't be empty")

// Publisher publishes broker messages under routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message []byte) error
}

// RabbitMQSender delivers scrape commands to worker queue bound to its routing key.
type RabbitMQSender struct {
	publisher  Publisher
	routingKey string
}

// NewRabbitMQSender binds sender to routing key of scrape commands queue.
func NewRabbitMQSender(publisher Publisher, routingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:  publisher,
		routingKey: routingKey,
	}
}

// Send publishes encoded scrape command.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	if len(msg) == 0 {
		return ErrEmptyMessage
	}

	if err := s.publisher.Publish(ctx, s.routingKey, msg); err != nil {
		return fmt.Errorf("can't publish command with routing key %q: %w", s.routingKey, err)
	}

	return nil
}
