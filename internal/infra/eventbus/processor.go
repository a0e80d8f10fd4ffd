package eventbus

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/lithammer/shortuuid/v3"
	"github.com/redis/go-redis/v9"
)

type SubscriberFactory func(handlerName string) (message.Subscriber, error)

// RedisSubscribers gives every handler its own consumer group so each one sees every event.
func RedisSubscribers(client *redis.Client, consumerGroup string, logger watermill.LoggerAdapter) SubscriberFactory {
	return func(handlerName string) (message.Subscriber, error) {
		return redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: consumerGroup + "." + handlerName,
		}, logger)
	}
}

type ProcessorConfig struct {
	Subscribers SubscriberFactory
	Handlers    []cqrs.EventHandler
	Logger      watermill.LoggerAdapter
	MaxRetries  int
}

func NewProcessor(cfg ProcessorConfig) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("creating router: %w", err)
	}

	router.AddMiddleware(correlationIDMiddleware)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      cfg.MaxRetries,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          cfg.Logger,
	}.Middleware)
	router.AddMiddleware(middleware.Recoverer)

	ep, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return cfg.Subscribers(params.HandlerName)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: marshaler(),
		Logger:    cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating event processor: %w", err)
	}

	if err := ep.AddHandlers(cfg.Handlers...); err != nil {
		return nil, fmt.Errorf("adding handlers: %w", err)
	}

	return router, nil
}

func correlationIDMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		id := middleware.MessageCorrelationID(msg)
		if id == "" {
			id = "gen_" + shortuuid.New()
		}
		msg.SetContext(log.ContextWithCorrelationID(msg.Context(), id))
		return next(msg)
	}
}
