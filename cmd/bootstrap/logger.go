package bootstrap

import (
	"log/slog"

	"badminton-club/internal/handler/middleware"
	"badminton-club/internal/infra/eventbus"
	"badminton-club/internal/pkg/config"

	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewWatermillLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

func NewWatermillLogger(logger *slog.Logger) watermill.LoggerAdapter {
	return eventbus.NewSlogAdapter(logger)
}
