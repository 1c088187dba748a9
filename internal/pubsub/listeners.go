package pubsub

import "github.com/sirupsen/logrus"

// RegisterLogListeners subscribes a logging listener on every item lifecycle
// topic. It must be called at startup, before the server accepts requests.
func RegisterLogListeners(b *Broker, logger logrus.FieldLogger) error {
	topics := []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted}

	for _, topic := range topics {
		topic := topic
		err := b.Subscribe(topic, func(p Payload) {
			logger.WithField("item_id", p.ItemID).Infof("event %s", topic)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
