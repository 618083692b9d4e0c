package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	RoutingKeyRegistered = "participant.registered"
	RoutingKeyCheckedIn  = "participant.checked_in"
	RoutingKeyCheckedOut = "participant.checked_out"
)

// ParticipantEvent is the body of every attendance message.
type ParticipantEvent struct {
	ParticipantID uuid.UUID `json:"participantId"`
	EventID       uuid.UUID `json:"eventId"`
	TicketID      string    `json:"ticketId"`
	Status        string    `json:"status"`
	BusNumber     string    `json:"busNumber,omitempty"`
	StaffMember   string    `json:"staffMember,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close()
}

// Client publishes JSON messages to a durable topic exchange.
type Client struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	channel  *amqp.Channel
	exchange string
}

func NewRabbit(url, exchange string) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp.Dial -> %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("conn.Channel -> %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("ch.ExchangeDeclare -> %w", err)
	}

	zap.L().Info("rabbitmq initialized", zap.String("exchange", exchange))

	return &Client{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

func (c *Client) Publish(ctx context.Context, routingKey string, payload any) error {
	msg, err := newPublishing(payload, time.Now())
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err = c.channel.PublishWithContext(ctx, c.exchange, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("c.channel.PublishWithContext -> %w", err)
	}

	zap.L().Debug("message published", zap.String("exchange", c.exchange), zap.String("routing_key", routingKey))

	return nil
}

func (c *Client) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}

	zap.L().Info("rabbitmq connection closed")
}

func newPublishing(payload any, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("json.Marshal -> %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    now,
		Body:         body,
	}, nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, any) error {
	return nil
}

func (NoopPublisher) Close() {}
