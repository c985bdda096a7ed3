package components

import (
	"activity-booking/internal/handler"
	"activity-booking/internal/handler/api"
	"activity-booking/internal/handler/middleware"
	"activity-booking/internal/infra/processor"
	"activity-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewCartHandler,
		api.NewVoucherHandler,
		api.NewOrderHandler,
		NewPaymentHandler,
		api.NewResourceHandler,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Availability *api.AvailabilityHandler
	Cart         *api.CartHandler
	Voucher      *api.VoucherHandler
	Order        *api.OrderHandler
	Payment      *api.PaymentHandler
	Resource     *api.ResourceHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Availability: p.Availability,
		Cart:         p.Cart,
		Voucher:      p.Voucher,
		Order:        p.Order,
		Payment:      p.Payment,
		Resource:     p.Resource,
	}
}

func NewPaymentHandler(cmds commands.SettlementCommands, webhook api.WebhookParser) *api.PaymentHandler {
	return api.NewPaymentHandler(cmds, webhook, processor.SignatureHeader, processor.IsLocalIntent)
}
