package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	paymentpkg "github.com/Juankcba/choapp-back/internal/pkg/payment"
	"github.com/Juankcba/choapp-back/internal/utils"
	"github.com/Juankcba/choapp-back/services/payment"
	"github.com/labstack/echo/v4"
)

const maxWebhookBody = 64 << 10

// PaymentHandler handles HTTP requests for service payments
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// Webhook receives checkout events from the payment provider
func (h *PaymentHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read body")
	}

	err = h.paymentUC.HandleWebhook(c.Request().Context(), payload, c.Request().Header.Get("Stripe-Signature"))
	if errors.Is(err, paymentpkg.ErrInvalidSignature) {
		logger.WarnCtx(c.Request().Context(), "Rejected webhook with invalid signature",
			logger.String("client_ip", c.RealIP()))
		return utils.BadRequestResponse(c, "Invalid signature")
	}
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to process payment webhook", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// CreateCheckout opens a new checkout for an accepted service
func (h *PaymentHandler) CreateCheckout(c echo.Context) error {
	actor := models.Actor{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}
	session, err := h.paymentUC.CreateCheckout(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Checkout created", session)
}

// GetPaymentStatus returns the payment state of a service
func (h *PaymentHandler) GetPaymentStatus(c echo.Context) error {
	actor := models.Actor{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}
	status, err := h.paymentUC.GetPaymentStatus(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// ConfirmPayment reconciles a checkout with the provider when the webhook was missed
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	actor := models.Actor{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}
	status, err := h.paymentUC.ConfirmPayment(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// GetPaymentHistory lists the caller's payments, newest first
func (h *PaymentHandler) GetPaymentHistory(c echo.Context) error {
	actor := models.Actor{UserID: middleware.UserID(c), Role: middleware.UserRole(c)}
	history, err := h.paymentUC.GetPaymentHistory(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", history)
}

// ReleasePayment pays out a held payment
func (h *PaymentHandler) ReleasePayment(c echo.Context) error {
	if err := h.paymentUC.ReleasePayment(c.Request().Context(), c.Param("id")); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment released", nil)
}
