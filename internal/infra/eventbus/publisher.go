package eventbus

import (
	"context"
	"fmt"

	"badminton-club/internal/usecase/events"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
)

const MetadataSource = "source"

type Publisher struct {
	bus *cqrs.EventBus
}

func NewRedisPublisher(client *redis.Client, logger watermill.LoggerAdapter) (message.Publisher, error) {
	pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("creating redis stream publisher: %w", err)
	}
	return pub, nil
}

// NewPublisher publishes each event on the topic named after its struct.
func NewPublisher(pub message.Publisher, logger watermill.LoggerAdapter) (*Publisher, error) {
	bus, err := cqrs.NewEventBusWithConfig(correlationPublisher{Publisher: pub}, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return params.EventName, nil
		},
		OnPublish: func(params cqrs.OnEventSendParams) error {
			if sourced, ok := params.Event.(events.Sourced); ok {
				params.Message.Metadata.Set(MetadataSource, sourced.EventSource())
			}
			return nil
		},
		Marshaler: marshaler(),
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event bus: %w", err)
	}
	return &Publisher{bus: bus}, nil
}

func (p *Publisher) Publish(ctx context.Context, event any) error {
	if err := p.bus.Publish(ctx, event); err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}
	return nil
}

type correlationPublisher struct {
	message.Publisher
}

func (c correlationPublisher) Publish(topic string, msgs ...*message.Message) error {
	for _, msg := range msgs {
		middleware.SetCorrelationID(log.CorrelationIDFromContext(msg.Context()), msg)
	}
	return c.Publisher.Publish(topic, msgs...)
}

func marshaler() cqrs.CommandEventMarshaler {
	return cqrs.JSONMarshaler{
		GenerateName: cqrs.StructName,
	}
}
