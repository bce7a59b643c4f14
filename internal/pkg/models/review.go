package models

import "time"

// Review is a family's rating of a completed service
type Review struct {
	ID          string    `json:"id" db:"id"`
	ServiceID   string    `json:"service_id" db:"service_id"`
	FamilyID    string    `json:"family_id" db:"family_id"`
	CaregiverID string    `json:"caregiver_id" db:"caregiver_id"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     string    `json:"comment" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CaregiverReview is a review as shown on a caregiver's public profile
type CaregiverReview struct {
	ID         string    `json:"id" db:"id"`
	ServiceID  string    `json:"service_id" db:"service_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	FamilyName string    `json:"family_name" db:"family_name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest is the payload to review a service
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// AdminStats summarizes marketplace activity
type AdminStats struct {
	TotalFamilies     int     `json:"total_families" db:"total_families"`
	TotalCaregivers   int     `json:"total_caregivers" db:"total_caregivers"`
	PendingCaregivers int     `json:"pending_caregivers" db:"pending_caregivers"`
	TotalServices     int     `json:"total_services" db:"total_services"`
	ActiveServices    int     `json:"active_services" db:"active_services"`
	CompletedServices int     `json:"completed_services" db:"completed_services"`
	TotalRevenue      float64 `json:"total_revenue" db:"total_revenue"`
	OnlineUsers       int     `json:"online_users" db:"-"`
}

// VerifyCaregiverRequest is the admin decision on a caregiver profile
type VerifyCaregiverRequest struct {
	Status VerificationStatus `json:"status"`
}
