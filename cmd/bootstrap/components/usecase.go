package components

import (
	"log/slog"

	"badminton-club/internal/domain/booking"
	"badminton-club/internal/pkg/clock"
	"badminton-club/internal/pkg/config"
	"badminton-club/internal/pkg/jwt"
	"badminton-club/internal/usecase"
	"badminton-club/internal/usecase/commands"
	"badminton-club/internal/usecase/events"
	"badminton-club/internal/usecase/notifications"
	"badminton-club/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseNotificationsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
	func(cfg config.Config) commands.BookingCommandsConfig {
		return commands.BookingCommandsConfig{
			AdmissionAttempts: cfg.Booking.AdmissionAttempts,
			PublishTimeout:    cfg.Events.PublishTimeout,
		}
	},
)

func NewPriceCalculator(cfg config.Config) (*booking.DefaultPriceCalculator, error) {
	policy, err := booking.DurationPolicyByName(cfg.Booking.DurationPolicy)
	if err != nil {
		return nil, err
	}
	return booking.NewDefaultPriceCalculator(policy), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			repo commands.UserRepository,
			jwtService *jwt.Service,
			publisher events.Publisher,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) commands.AuthCommands {
			return commands.NewAuthCommands(repo, jwtService, publisher, clk, cfg.Events.PublishTimeout, logger)
		},
		commands.NewUserCommands,
		commands.NewCourtCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCourtQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseNotificationsModule = fx.Module("usecase/notifications",
	fx.Provide(
		notifications.NewHandlers,
	),
)
