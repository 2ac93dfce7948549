package components

import (
	"care-booking/internal/handler"
	"care-booking/internal/handler/api"
	"care-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingDraftHandler,
		api.NewBookingHandler,
		api.NewQuotaHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(drafts *api.BookingDraftHandler, bookings *api.BookingHandler, quota *api.QuotaHandler) handler.Handlers {
	return handler.Handlers{
		Drafts:   drafts,
		Bookings: bookings,
		Quota:    quota,
	}
}
