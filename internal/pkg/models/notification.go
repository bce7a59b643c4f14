package models

import (
	"database/sql"
	"time"
)

// NotificationStatus is the caregiver's answer to an offer
type NotificationStatus string

const (
	NotificationPending    NotificationStatus = "pending"
	NotificationInterested NotificationStatus = "interested"
	NotificationDeclined   NotificationStatus = "declined"
	NotificationAccepted   NotificationStatus = "accepted"
)

// NotificationChannel records how an offer reached the caregiver
type NotificationChannel string

const (
	ChannelEmail     NotificationChannel = "email"
	ChannelWebsocket NotificationChannel = "websocket"
	ChannelBoth      NotificationChannel = "both"
)

// ServiceNotification records one offer of a service to one caregiver
type ServiceNotification struct {
	ID          string              `json:"id" db:"id"`
	ServiceID   string              `json:"service_id" db:"service_id"`
	CaregiverID string              `json:"caregiver_id" db:"caregiver_id"`
	Distance    float64             `json:"distance_km" db:"distance"`
	Channel     NotificationChannel `json:"channel" db:"channel"`
	Status      NotificationStatus  `json:"status" db:"status"`
	RespondedAt sql.NullTime        `json:"-" db:"responded_at"`
	Version     int                 `json:"version" db:"version"`
	CreatedAt   time.Time           `json:"created_at" db:"created_at"`
}

// RespondRequest is a caregiver's answer to an offer
type RespondRequest struct {
	Status NotificationStatus `json:"status"`
}

// IsValid reports whether the status is one a caregiver may answer with
func (r RespondRequest) IsValid() bool {
	return r.Status == NotificationInterested || r.Status == NotificationDeclined
}

// SelectCaregiverRequest is the family's choice among candidates
type SelectCaregiverRequest struct {
	CaregiverID string `json:"caregiver_id"`
}

// Candidate is a caregiver that showed interest in a service
type Candidate struct {
	Caregiver   *Caregiver         `json:"caregiver"`
	Distance    float64            `json:"distance_km"`
	Status      NotificationStatus `json:"status"`
	RespondedAt *time.Time         `json:"responded_at,omitempty"`
}

// Offer is a service offered to a caregiver as seen from the caregiver side
type Offer struct {
	NotificationID string             `json:"notification_id"`
	Service        *Service           `json:"service"`
	Distance       float64            `json:"distance_km"`
	Status         NotificationStatus `json:"status"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NotifyResult is the outcome of a fan-out
type NotifyResult struct {
	Notified int `json:"notified"`
}

// SelectResult is returned when a family picks a caregiver
type SelectResult struct {
	Service  *Service         `json:"service"`
	Checkout *CheckoutSession `json:"checkout,omitempty"`
}

// SweepResult summarizes one run of the re-matching sweep
type SweepResult struct {
	Checked  int `json:"checked"`
	Notified int `json:"notified"`
	Failed   int `json:"failed"`
}
