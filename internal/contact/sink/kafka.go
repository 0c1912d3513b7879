package sink

import (
	"context"

	"github.com/fekuna/omnipos-storefront/internal/contact"
	"github.com/fekuna/omnipos-storefront/internal/contact/dto"
)

// Publisher is satisfied by *broker.KafkaProducer.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
	Topic() string
}

// KafkaSink publishes each submission as a JSON event keyed by its id.
type KafkaSink struct {
	pub Publisher
}

var _ contact.Sink = (*KafkaSink)(nil)

func NewKafkaSink(pub Publisher) *KafkaSink {
	return &KafkaSink{pub: pub}
}

func (s *KafkaSink) Deliver(ctx context.Context, sub *dto.Submission) error {
	return s.pub.PublishJSON(ctx, sub.ID, sub)
}

func (s *KafkaSink) Name() string { return "kafka:" + s.pub.Topic() }
