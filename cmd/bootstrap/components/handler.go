package components

import (
	"badminton-club/internal/handler"
	"badminton-club/internal/handler/api"
	"badminton-club/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewCourtHandler,
		api.NewBookingHandler,
		func(auth *api.AuthHandler, user *api.UserHandler, court *api.CourtHandler, booking *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, User: user, Court: court, Booking: booking}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
