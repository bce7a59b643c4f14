package models

import (
	"math"
	"time"
)

// CheckoutSession is the hosted payment page created for a selected service
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutRequest describes what the family is charged for
type CheckoutRequest struct {
	ServiceID   string
	FamilyEmail string
	Description string
	TotalAmount float64
	Currency    string
	SuccessURL  string
	CancelURL   string
}

// PaymentStatusResponse is returned by the payment status endpoint
type PaymentStatusResponse struct {
	ServiceID     string         `json:"service_id"`
	ServiceStatus ServiceStatus  `json:"service_status"`
	Payment       ServicePayment `json:"payment"`
	TotalCharged  float64        `json:"total_charged"`
}

// PaymentHistoryEntry is one service in a family's or caregiver's payment history
type PaymentHistoryEntry struct {
	ServiceID     string         `json:"service_id"`
	ServiceType   ServiceType    `json:"service_type"`
	ServiceName   string         `json:"service_name"`
	ServiceStatus ServiceStatus  `json:"service_status"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	Duration      int            `json:"duration"`
	Payment       ServicePayment `json:"payment"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// CheckoutCompleted is the verified outcome of a gateway webhook
type CheckoutCompleted struct {
	ServiceID  string
	SessionID  string
	PaymentRef string
	Paid       bool
}

// Breakdown holds the amounts derived from hourly rate and duration
type Breakdown struct {
	Amount              float64
	CommissionFamily    float64
	CommissionCaregiver float64
	NetAmount           float64
	Total               float64
}

// CalculateBreakdown applies the commission rate to both sides of the payment
func CalculateBreakdown(hourlyRate float64, hours int, rate float64) Breakdown {
	amount := roundCents(hourlyRate * float64(hours))
	commission := roundCents(amount * rate)
	return Breakdown{
		Amount:              amount,
		CommissionFamily:    commission,
		CommissionCaregiver: commission,
		NetAmount:           roundCents(amount - commission),
		Total:               roundCents(amount + commission),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
