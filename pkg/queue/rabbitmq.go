package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/config"
	"github.com/Chopaholic/MotorAdverts/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ListingEventsQueueName = "listing_events_queue"
	ListingEventsExchange  = "listing_events"

	RoutingKeyListingPublished = "listing.published"
)

// ListingPublishedEvent is emitted after the public/private document pair is
// written. Downstream consumers (alerts, search indexing) subscribe to it.
type ListingPublishedEvent struct {
	ListingID string  `json:"listing_id"`
	OwnerUID  string  `json:"owner_uid"`
	Category  string  `json:"category"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	PostedAt  string  `json:"posted_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ListingEventsExchange, // name
		"direct",              // type
		true,                  // durable
		false,                 // auto-deleted
		false,                 // internal
		false,                 // no-wait
		nil,                   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	queue, err := channel.QueueDeclare(
		ListingEventsQueueName, // name
		true,                   // durable
		false,                  // delete when unused
		false,                  // exclusive
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		queue.Name,
		RoutingKeyListingPublished,
		ListingEventsExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) PublishListingPublished(event ListingPublishedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		ListingEventsExchange,
		RoutingKeyListingPublished,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	c.logger.Info("Published %s event for listing %s", RoutingKeyListingPublished, event.ListingID)
	return nil
}

// ConsumeListingPublished delivers decoded events to handler until the
// channel closes. Messages that fail to decode are rejected without requeue;
// handler errors requeue the message once.
func (c *Client) ConsumeListingPublished(handler func(ListingPublishedEvent) error) error {
	deliveries, err := c.channel.Consume(
		ListingEventsQueueName,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	for d := range deliveries {
		var event ListingPublishedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			c.logger.Warn("Dropping undecodable %s message: %v", RoutingKeyListingPublished, err)
			d.Reject(false)
			continue
		}

		if err := handler(event); err != nil {
			c.logger.Error("Handler failed for listing %s: %v", event.ListingID, err)
			d.Nack(false, !d.Redelivered)
			continue
		}
		d.Ack(false)
	}
	return nil
}

func (c *Client) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
