package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Juankcba/choapp-back/internal/pkg/circuitbreaker"
	"github.com/Juankcba/choapp-back/internal/pkg/models"
	stripe "github.com/stripe/stripe-go/v82"
	checksession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const eventCheckoutCompleted = "checkout.session.completed"

var (
	// ErrUnhandledEvent is returned for verified webhook events the service does not act on
	ErrUnhandledEvent = errors.New("unhandled webhook event")
	// ErrInvalidSignature is returned when the webhook payload fails verification
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// StripeClient creates checkout sessions and verifies webhooks
type StripeClient struct {
	cfg     models.PaymentConfig
	breaker *circuitbreaker.Breaker
}

// NewStripeClient sets the API key and returns a client
func NewStripeClient(cfg models.PaymentConfig) *StripeClient {
	stripe.Key = cfg.StripeSecretKey
	return &StripeClient{
		cfg:     cfg,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("stripe")),
	}
}

// CreateCheckout opens a hosted checkout page charging the family the total amount.
// The service id travels as client reference so the webhook can find the service.
func (c *StripeClient) CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	currency := req.Currency
	if currency == "" {
		currency = c.cfg.Currency
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(req.ServiceID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(ToMinorUnits(req.TotalAmount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(withServiceID(firstNonEmpty(req.SuccessURL, c.cfg.SuccessURL), req.ServiceID)),
		CancelURL:  stripe.String(withServiceID(firstNonEmpty(req.CancelURL, c.cfg.CancelURL), req.ServiceID)),
	}
	if req.FamilyEmail != "" {
		params.CustomerEmail = stripe.String(req.FamilyEmail)
	}
	params.AddMetadata("service_id", req.ServiceID)
	params.Context = ctx

	var sess *stripe.CheckoutSession
	err := c.breaker.Execute(ctx, func(context.Context) error {
		var err error
		sess, err = checksession.New(params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &models.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhook verifies the signature and extracts a completed checkout.
// Other event types return ErrUnhandledEvent.
func (c *StripeClient) ParseWebhook(payload []byte, sigHeader string) (*models.CheckoutCompleted, error) {
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, c.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if string(event.Type) != eventCheckoutCompleted {
		return nil, ErrUnhandledEvent
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal checkout session: %w", err)
	}
	return completedFrom(&sess), nil
}

// GetCheckout looks a checkout session up directly. It backs payment
// confirmation when the webhook never arrived.
func (c *StripeClient) GetCheckout(ctx context.Context, sessionID string) (*models.CheckoutCompleted, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	var sess *stripe.CheckoutSession
	err := c.breaker.Execute(ctx, func(context.Context) error {
		var err error
		sess, err = checksession.Get(sessionID, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	return completedFrom(sess), nil
}

func completedFrom(sess *stripe.CheckoutSession) *models.CheckoutCompleted {
	serviceID := sess.ClientReferenceID
	if serviceID == "" {
		serviceID = sess.Metadata["service_id"]
	}

	completed := &models.CheckoutCompleted{
		ServiceID: serviceID,
		SessionID: sess.ID,
		Paid:      sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
	}
	if sess.PaymentIntent != nil {
		completed.PaymentRef = sess.PaymentIntent.ID
	}
	return completed
}

// ToMinorUnits converts an amount to the integer cents the gateway expects
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func withServiceID(url, serviceID string) string {
	return strings.ReplaceAll(url, "{SERVICE_ID}", serviceID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
