package models

import (
	"encoding/json"
	"time"
)

// DomainEvent is published on the event stream after a state change
type DomainEvent struct {
	Type       string          `json:"type"`
	UserID     string          `json:"user_id,omitempty"`
	ServiceID  string          `json:"service_id"`
	Data       json.RawMessage `json:"data,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// ServiceNearbyPayload is pushed to caregivers when a service is offered to them
type ServiceNearbyPayload struct {
	ServiceID     string    `json:"service_id"`
	ServiceType   string    `json:"service_type"`
	ServiceName   string    `json:"service_name"`
	PatientName   string    `json:"patient_name"`
	Distance      float64   `json:"distance_km"`
	Area          string    `json:"area,omitempty"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Duration      int       `json:"duration"`
}

// CaregiverInterestedPayload tells a family a caregiver wants the job
type CaregiverInterestedPayload struct {
	ServiceID     string  `json:"service_id"`
	CaregiverID   string  `json:"caregiver_id"`
	CaregiverName string  `json:"caregiver_name"`
	Rating        float64 `json:"rating"`
	Distance      float64 `json:"distance_km"`
}

// ServiceStatusPayload carries a lifecycle transition to the other party
type ServiceStatusPayload struct {
	ServiceID   string        `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Status      ServiceStatus `json:"status"`
	FamilyID    string        `json:"family_id,omitempty"`
	CaregiverID string        `json:"caregiver_id,omitempty"`
	Address     string        `json:"address,omitempty"`
	At          time.Time     `json:"at"`
}

// PaymentPayload carries payment state changes
type PaymentPayload struct {
	ServiceID string        `json:"service_id"`
	Amount    float64       `json:"amount"`
	NetAmount float64       `json:"net_amount,omitempty"`
	Status    PaymentStatus `json:"status"`
}
