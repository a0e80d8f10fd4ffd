package bootstrap

import (
	"context"
	"log/slog"

	"badminton-club/internal/infra/eventbus"
	"badminton-club/internal/pkg/config"
	"badminton-club/internal/usecase/events"
	"badminton-club/internal/usecase/notifications"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(events.Publisher)),
		),
	),
	fx.Invoke(startEventProcessor),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewEventPublisher(client *redis.Client, logger watermill.LoggerAdapter) (*eventbus.Publisher, error) {
	pub, err := eventbus.NewRedisPublisher(client, logger)
	if err != nil {
		return nil, err
	}
	return eventbus.NewPublisher(pub, logger)
}

func startEventProcessor(
	lc fx.Lifecycle,
	cfg config.Config,
	client *redis.Client,
	handlers *notifications.Handlers,
	wmLogger watermill.LoggerAdapter,
	logger *slog.Logger,
) error {
	if !cfg.Events.WorkerEnabled {
		logger.Info("イベントワーカーは無効です")
		return nil
	}

	router, err := eventbus.NewProcessor(eventbus.ProcessorConfig{
		Subscribers: eventbus.RedisSubscribers(client, cfg.Events.ConsumerGroup, wmLogger),
		Handlers: []cqrs.EventHandler{
			cqrs.NewEventHandler("send-booking-confirmation", handlers.OnBookingCreated),
			cqrs.NewEventHandler("send-welcome-email", handlers.OnUserRegistered),
		},
		Logger:     wmLogger,
		MaxRetries: 5,
	})
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := router.Run(context.Background()); err != nil {
					logger.Error("イベントワーカーが停止しました", "error", err)
				}
			}()
			logger.Info("🚀 イベントワーカーを起動します", "consumer_group", cfg.Events.ConsumerGroup)
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 イベントワーカーを停止します")
			return router.Close()
		},
	})
	return nil
}
