// Package pubsub provides an in-process publish/subscribe broker for item
// lifecycle events. Delivery is best-effort: no persistence, no retry and no
// ordering guarantee across subscribers beyond registration order.
package pubsub

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// TopicItemCreated is published once per successfully created item.
	TopicItemCreated = "item_created"
	// TopicItemUpdated is published once per successfully updated item.
	TopicItemUpdated = "item_updated"
	// TopicItemDeleted is published once per successfully deleted item.
	TopicItemDeleted = "item_deleted"
)

type (
	// A Payload is the body carried by every item lifecycle event.
	Payload struct {
		ItemID string `json:"item_id"`
	}

	// A Broker routes item lifecycle events to its subscribers.
	Broker struct {
		channel *gochannel.GoChannel
		logger  logrus.FieldLogger
	}
)

// NewBroker returns a new in-process Broker.
func NewBroker(logger logrus.FieldLogger) *Broker {
	return &Broker{
		channel: gochannel.NewGoChannel(gochannel.Config{}, &logrusAdapter{logger: logger}),
		logger:  logger,
	}
}

// Publish emits an event for the given item on the given topic.
// Absence of subscribers is not an error.
func (b *Broker) Publish(topic, itemID string) error {
	payload, err := json.Marshal(Payload{ItemID: itemID})
	if err != nil {
		return errors.Wrap(err, "could not serialize event payload")
	}

	err = b.channel.Publish(topic, message.NewMessage(watermill.NewUUID(), payload))
	return errors.Wrapf(err, "could not publish on %s", topic)
}

// Subscribe registers handler for the given topic.
// Each message is consumed on a dedicated goroutine and acknowledged whatever
// the handler outcome.
func (b *Broker) Subscribe(topic string, handler func(Payload)) error {
	messages, err := b.channel.Subscribe(context.Background(), topic)
	if err != nil {
		return errors.Wrapf(err, "could not subscribe to %s", topic)
	}

	go func() {
		for msg := range messages {
			var payload Payload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				b.logger.WithError(err).Warnf("invalid payload on %s", topic)
				msg.Ack()
				continue
			}

			handler(payload)
			msg.Ack()
		}
	}()

	return nil
}

// Close shutdowns the broker and terminates all subscriptions.
func (b *Broker) Close() error {
	return errors.Wrap(b.channel.Close(), "could not close broker")
}

// logrusAdapter exposes a logrus logger as a watermill.LoggerAdapter.
type logrusAdapter struct {
	logger logrus.FieldLogger
}

func (a *logrusAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.WithError(err).WithFields(logrus.Fields(fields)).Error(msg)
}

func (a *logrusAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (a *logrusAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (a *logrusAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (a *logrusAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &logrusAdapter{logger: a.logger.WithFields(logrus.Fields(fields))}
}
