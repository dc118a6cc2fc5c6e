package components

import (
	"brewpoints/internal/handler"
	"brewpoints/internal/handler/api"
	"brewpoints/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPurchaseHandler,
		api.NewProductHandler,
		api.NewLoyaltyHandler,
		api.NewNotificationHandler,
		api.NewAccountHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	purchase *api.PurchaseHandler,
	product *api.ProductHandler,
	loyalty *api.LoyaltyHandler,
	notification *api.NotificationHandler,
	account *api.AccountHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Purchase:     purchase,
		Product:      product,
		Loyalty:      loyalty,
		Notification: notification,
		Account:      account,
	}
}
