package audit

import (
	"context"
	"errors"
	"fmt"
	"io"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/chrisdamba/foodadmin/internal/models"
)

// publisher is the part of *amqp.Channel the sink uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitSink publishes events to a durable topic exchange with the routing
// key "<entity>.<action>".
type RabbitSink struct {
	conn     io.Closer
	ch       publisher
	exchange string
}

func NewRabbitSink(cfg models.AuditConfig) (*RabbitSink, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("dial audit broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(conn.Close(), err)
	}
	if err := ch.ExchangeDeclare(cfg.AMQPExchange, "topic", true, false, false, false, nil); err != nil {
		return nil, errors.Join(ch.Close(), conn.Close(), err)
	}
	return &RabbitSink{conn: conn, ch: ch, exchange: cfg.AMQPExchange}, nil
}

func (r *RabbitSink) Record(ctx context.Context, e Event) error {
	body, err := e.Encode()
	if err != nil {
		return err
	}
	err = r.ch.PublishWithContext(ctx, r.exchange, RoutingKey(e), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.Time,
		MessageId:    e.ID,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish audit event %s: %w", e.ID, err)
	}
	return nil
}

func (r *RabbitSink) Close() error {
	err := r.ch.Close()
	if r.conn != nil {
		err = errors.Join(err, r.conn.Close())
	}
	return err
}

func RoutingKey(e Event) string {
	return e.Entity + "." + e.Action
}
