package components

import (
	"badminton-club/internal/infra/repository"
	"badminton-club/internal/usecase/commands"
	"badminton-club/internal/usecase/notifications"
	"badminton-club/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCourtRepository,
			fx.As(new(commands.CourtRepository)),
			fx.As(new(queries.CourtReadStore)),
			fx.As(new(notifications.CourtLoader)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
			fx.As(new(notifications.UserLoader)),
		),
	),
)
