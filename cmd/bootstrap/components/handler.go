package components

import (
	"gym-booking/internal/handler"
	"gym-booking/internal/handler/api"
	"gym-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAdminHandler,
		api.NewLiveHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, booking *api.BookingHandler, admin *api.AdminHandler, live *api.LiveHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Booking: booking, Admin: admin, Live: live}
		},
	),
	fx.Invoke(handler.NewRouter),
)
