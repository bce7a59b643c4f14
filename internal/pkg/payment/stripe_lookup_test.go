package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Juankcba/choapp-back/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v82"
)

func useStripeServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	srv := httptest.NewServer(handler)
	previous := stripe.GetBackend(stripe.APIBackend)
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
	}))
	t.Cleanup(func() {
		stripe.SetBackend(stripe.APIBackend, previous)
		srv.Close()
	})
}

func TestGetCheckout(t *testing.T) {
	tests := []struct {
		name          string
		paymentStatus string
		paid          bool
	}{
		{"paid", "paid", true},
		{"still open", "unpaid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useStripeServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/v1/checkout/sessions/cs_123", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprintf(w, `{
					"id": "cs_123",
					"object": "checkout.session",
					"client_reference_id": "svc-1",
					"payment_status": %q,
					"payment_intent": "pi_987"
				}`, tt.paymentStatus)
			})

			c := NewStripeClient(models.PaymentConfig{StripeSecretKey: "sk_test_123"})
			got, err := c.GetCheckout(context.Background(), "cs_123")
			require.NoError(t, err)
			assert.Equal(t, "svc-1", got.ServiceID)
			assert.Equal(t, "cs_123", got.SessionID)
			assert.Equal(t, "pi_987", got.PaymentRef)
			assert.Equal(t, tt.paid, got.Paid)
		})
	}
}

func TestGetCheckout_ProviderError(t *testing.T) {
	useStripeServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": {"type": "invalid_request_error", "message": "No such checkout.session: cs_missing"}}`)
	})

	c := NewStripeClient(models.PaymentConfig{StripeSecretKey: "sk_test_123"})
	_, err := c.GetCheckout(context.Background(), "cs_missing")
	assert.ErrorContains(t, err, "get checkout session")
}
