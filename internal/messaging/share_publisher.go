package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RabbitMQSharePublisher publishes ShareStoryPayload messages.
type RabbitMQSharePublisher struct {
	ch           channel
	logger       *zap.Logger
	exchangeName string
}

// NewRabbitMQSharePublisher opens a channel on conn and declares the exchange.
func NewRabbitMQSharePublisher(conn *amqp091.Connection, exchangeName string, logger *zap.Logger) (*RabbitMQSharePublisher, error) {
	if conn == nil {
		return nil, errors.New("rabbitmq connection is nil")
	}
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("Failed to open a channel for story shares", zap.Error(err))
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	p, err := newSharePublisher(ch, exchangeName, logger)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	return p, nil
}

func newSharePublisher(ch channel, exchangeName string, logger *zap.Logger) (*RabbitMQSharePublisher, error) {
	if exchangeName == "" {
		exchangeName = DefaultShareExchange
	}
	err := ch.ExchangeDeclare(
		exchangeName,
		shareExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		logger.Error("Failed to declare share exchange", zap.String("exchange", exchangeName), zap.Error(err))
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}
	logger.Info("Share exchange declared", zap.String("exchange", exchangeName), zap.String("type", shareExchangeType))

	return &RabbitMQSharePublisher{
		ch:           ch,
		logger:       logger.Named("SharePublisher"),
		exchangeName: exchangeName,
	}, nil
}

// PublishShare sends payload as a persistent JSON message.
func (p *RabbitMQSharePublisher) PublishShare(ctx context.Context, payload ShareStoryPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal share payload: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchangeName,
		"",    // routing key, ignored by fanout
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Type:         shareMessageType,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("Failed to publish share event", zap.Error(err), zap.String("storyID", payload.StoryID))
		return fmt.Errorf("failed to publish share event: %w", err)
	}

	p.logger.Debug("Share event published", zap.String("storyID", payload.StoryID))
	return nil
}

// Close closes the channel.
func (p *RabbitMQSharePublisher) Close() error {
	if p.ch != nil {
		return p.ch.Close()
	}
	return nil
}
