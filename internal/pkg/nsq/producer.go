package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// Producer publishes JSON messages to nsqd
type Producer struct {
	producer *nsq.Producer
}

// NewProducer connects to nsqd at address; an unreachable daemon is an error
func NewProducer(address string) (*Producer, error) {
	producer, err := nsq.NewProducer(address, nsq.NewConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("nsqd %s unreachable: %w", address, err)
	}
	return &Producer{producer: producer}, nil
}

// Ping is a readiness check
func (p *Producer) Ping(context.Context) error {
	return p.producer.Ping()
}

// Publish JSON-encodes message onto topic
func (p *Producer) Publish(topic string, message interface{}) error {
	if !nsq.IsValidTopicName(topic) {
		return fmt.Errorf("invalid NSQ topic %q", topic)
	}
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := p.producer.Publish(topic, body); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	logger.Debug("Published message", logger.String("topic", topic), logger.Int("bytes", len(body)))
	return nil
}

// Stop flushes in-flight publishes and disconnects
func (p *Producer) Stop() {
	p.producer.Stop()
}
