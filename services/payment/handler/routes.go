package handler

import (
	"github.com/Juankcba/choapp-back/internal/pkg/constants"
	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/services/payment"
	httpHandler "github.com/Juankcba/choapp-back/services/payment/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
	}
}

// RegisterPublicRoutes registers routes that authenticate by other means than JWT
func (h *Handler) RegisterPublicRoutes(e *echo.Echo) {
	e.POST("/payments/webhook", h.paymentHTTP.Webhook)
}

// RegisterRoutes registers the authenticated payment routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/services/:id/checkout", h.paymentHTTP.CreateCheckout,
		middleware.RequireRole(constants.RoleFamily, constants.RoleAdmin))
	api.GET("/services/:id/payment", h.paymentHTTP.GetPaymentStatus)
	api.POST("/services/:id/payment/confirm", h.paymentHTTP.ConfirmPayment,
		middleware.RequireRole(constants.RoleFamily, constants.RoleAdmin))
	api.GET("/payments/history", h.paymentHTTP.GetPaymentHistory,
		middleware.RequireRole(constants.RoleFamily, constants.RoleCaregiver))
	api.POST("/admin/services/:id/release", h.paymentHTTP.ReleasePayment,
		middleware.RequireRole(constants.RoleAdmin))
}
