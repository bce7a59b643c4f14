package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/nsqio/go-nsq"
)

// DefaultMaxAttempts bounds redelivery of a failing message
const DefaultMaxAttempts = 5

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
}

// NewConsumer creates a consumer for topic/channel and connects it to nsqd
func NewConsumer(topic, channel, address string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	config.MaxAttempts = DefaultMaxAttempts

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(topic, handler))

	if err := consumer.ConnectToNSQD(address); err != nil {
		consumer.Stop()
		return nil, fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}

	return &Consumer{consumer: consumer}, nil
}

// wrapHandler adapts a MessageHandler; returning an error requeues the message.
// Messages past their last attempt are dropped with an error log.
func wrapHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		if err := handler(message.Body); err != nil {
			if message.Attempts >= DefaultMaxAttempts {
				logger.Error("Dropping NSQ message after max attempts",
					logger.String("topic", topic),
					logger.Int("attempts", int(message.Attempts)),
					logger.Err(err))
				return nil
			}
			logger.Warn("Error processing NSQ message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
