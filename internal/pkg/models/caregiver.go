package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// DefaultServiceRadiusMeters is used when a caregiver has not set a radius
const DefaultServiceRadiusMeters = 30000

// VerificationStatus is the admin review state of a caregiver profile
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Location represents a geographic point
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether the coordinates are inside the WGS84 range
func (l Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Caregiver is a care professional that can be matched to services
type Caregiver struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone,omitempty"`
	Bio                string             `json:"bio,omitempty"`
	Location           *Location          `json:"location,omitempty"`
	ServiceRadius      int                `json:"service_radius"` // meters
	IsAvailable        bool               `json:"is_available"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	Specialties        []ServiceType      `json:"specialties"`
	HourlyRate         float64            `json:"hourly_rate"`
	Rating             float64            `json:"rating"`
	TotalReviews       int                `json:"total_reviews"`
	TotalServices      int                `json:"total_services"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// IsMatchable reports whether the caregiver can appear in a directory lookup
func (c *Caregiver) IsMatchable() bool {
	return c.IsAvailable && c.VerificationStatus == VerificationVerified && c.Location != nil
}

// RadiusKm returns the service radius in kilometers
func (c *Caregiver) RadiusKm() float64 {
	radius := c.ServiceRadius
	if radius <= 0 {
		radius = DefaultServiceRadiusMeters
	}
	return float64(radius) / 1000
}

// Offers reports whether the caregiver accepts the given service type.
// An empty specialty set accepts every type.
func (c *Caregiver) Offers(serviceType ServiceType) bool {
	if serviceType == "" || len(c.Specialties) == 0 {
		return true
	}
	for _, s := range c.Specialties {
		if s == serviceType {
			return true
		}
	}
	return false
}

// CaregiverDTO is used for database operations
type CaregiverDTO struct {
	ID                 string             `db:"id"`
	UserID             string             `db:"user_id"`
	Name               string             `db:"name"`
	Email              string             `db:"email"`
	Phone              string             `db:"phone"`
	Bio                string             `db:"bio"`
	Latitude           sql.NullFloat64    `db:"location_lat"`
	Longitude          sql.NullFloat64    `db:"location_lng"`
	ServiceRadius      int                `db:"service_radius"`
	IsAvailable        bool               `db:"is_available"`
	VerificationStatus VerificationStatus `db:"verification_status"`
	Specialties        pq.StringArray     `db:"specialties"`
	HourlyRate         float64            `db:"hourly_rate"`
	Rating             float64            `db:"rating"`
	TotalReviews       int                `db:"total_reviews"`
	TotalServices      int                `db:"total_services"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

// ToDTO converts a Caregiver to a CaregiverDTO
func (c *Caregiver) ToDTO() *CaregiverDTO {
	dto := &CaregiverDTO{
		ID:                 c.ID,
		UserID:             c.UserID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		Bio:                c.Bio,
		ServiceRadius:      c.ServiceRadius,
		IsAvailable:        c.IsAvailable,
		VerificationStatus: c.VerificationStatus,
		Specialties:        make(pq.StringArray, 0, len(c.Specialties)),
		HourlyRate:         c.HourlyRate,
		Rating:             c.Rating,
		TotalReviews:       c.TotalReviews,
		TotalServices:      c.TotalServices,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	for _, s := range c.Specialties {
		dto.Specialties = append(dto.Specialties, string(s))
	}
	if c.Location != nil {
		dto.Latitude = sql.NullFloat64{Float64: c.Location.Latitude, Valid: true}
		dto.Longitude = sql.NullFloat64{Float64: c.Location.Longitude, Valid: true}
	}
	return dto
}

// ToCaregiver converts a CaregiverDTO to a Caregiver
func (dto *CaregiverDTO) ToCaregiver() *Caregiver {
	c := &Caregiver{
		ID:                 dto.ID,
		UserID:             dto.UserID,
		Name:               dto.Name,
		Email:              dto.Email,
		Phone:              dto.Phone,
		Bio:                dto.Bio,
		ServiceRadius:      dto.ServiceRadius,
		IsAvailable:        dto.IsAvailable,
		VerificationStatus: dto.VerificationStatus,
		Specialties:        make([]ServiceType, 0, len(dto.Specialties)),
		HourlyRate:         dto.HourlyRate,
		Rating:             dto.Rating,
		TotalReviews:       dto.TotalReviews,
		TotalServices:      dto.TotalServices,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}
	for _, s := range dto.Specialties {
		c.Specialties = append(c.Specialties, ServiceType(s))
	}
	if dto.Latitude.Valid && dto.Longitude.Valid {
		c.Location = &Location{Latitude: dto.Latitude.Float64, Longitude: dto.Longitude.Float64}
	}
	return c
}

// NearbyCaregiver is a directory lookup hit
type NearbyCaregiver struct {
	Caregiver *Caregiver `json:"caregiver"`
	Distance  float64    `json:"distance_km"`
}

// CaregiverPreview is the public view of a directory hit. Contact details and
// the caregiver's coordinates stay out of it.
type CaregiverPreview struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Bio           string        `json:"bio,omitempty"`
	Specialties   []ServiceType `json:"specialties"`
	HourlyRate    float64       `json:"hourly_rate"`
	Rating        float64       `json:"rating"`
	TotalReviews  int           `json:"total_reviews"`
	TotalServices int           `json:"total_services"`
	Distance      float64       `json:"distance_km"`
}

// Preview projects the hit for callers outside the caregiver's own account
func (n *NearbyCaregiver) Preview() CaregiverPreview {
	c := n.Caregiver
	return CaregiverPreview{
		ID:            c.ID,
		Name:          c.Name,
		Bio:           c.Bio,
		Specialties:   c.Specialties,
		HourlyRate:    c.HourlyRate,
		Rating:        c.Rating,
		TotalReviews:  c.TotalReviews,
		TotalServices: c.TotalServices,
		Distance:      n.Distance,
	}
}

// UpdateCaregiverRequest carries the editable caregiver profile fields
type UpdateCaregiverRequest struct {
	Name          *string       `json:"name,omitempty"`
	Phone         *string       `json:"phone,omitempty"`
	Bio           *string       `json:"bio,omitempty"`
	ServiceRadius *int          `json:"service_radius,omitempty"`
	Specialties   []ServiceType `json:"specialties,omitempty"`
	HourlyRate    *float64      `json:"hourly_rate,omitempty"`
}

// AvailabilityRequest toggles whether a caregiver receives offers
type AvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}
