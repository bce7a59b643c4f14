package models

import (
	"database/sql"
	"time"
)

// ServiceStatus represents the lifecycle state of a care service request
type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusMatched    ServiceStatus = "matched"
	ServiceStatusAccepted   ServiceStatus = "accepted"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible
func (s ServiceStatus) IsTerminal() bool {
	return s == ServiceStatusCompleted || s == ServiceStatusCancelled
}

// HasCaregiver reports whether a service in this status carries an assigned caregiver
func (s ServiceStatus) HasCaregiver() bool {
	return s == ServiceStatusAccepted || s == ServiceStatusInProgress || s == ServiceStatusCompleted
}

// ServiceType is the kind of care requested
type ServiceType string

const (
	ServiceTypeElderlyCare          ServiceType = "elderly_care"
	ServiceTypeSpecialNeeds         ServiceType = "special_needs"
	ServiceTypeAlzheimers           ServiceType = "alzheimers"
	ServiceTypePhysicalTherapy      ServiceType = "physical_therapy"
	ServiceTypeMedicationManagement ServiceType = "medication_management"
	ServiceTypeCompanionship        ServiceType = "companionship"
	ServiceTypePersonalCare         ServiceType = "personal_care"
	ServiceTypeDementiaCare         ServiceType = "dementia_care"
)

var serviceTypeNames = map[ServiceType]string{
	ServiceTypeElderlyCare:          "Cuidado de Ancianos",
	ServiceTypeSpecialNeeds:         "Necesidades Especiales",
	ServiceTypeAlzheimers:           "Alzheimer y Demencia",
	ServiceTypePhysicalTherapy:      "Terapia Física",
	ServiceTypeMedicationManagement: "Administración de Medicamentos",
	ServiceTypeCompanionship:        "Compañía",
	ServiceTypePersonalCare:         "Cuidado Personal",
	ServiceTypeDementiaCare:         "Cuidado de Demencia",
}

// IsValid reports whether t is one of the known service types
func (t ServiceType) IsValid() bool {
	_, ok := serviceTypeNames[t]
	return ok
}

// DisplayName returns the human readable name shown to users
func (t ServiceType) DisplayName() string {
	if name, ok := serviceTypeNames[t]; ok {
		return name
	}
	return string(t)
}

// PaymentStatus tracks the escrow state of a service payment
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusHeld     PaymentStatus = "held"
	PaymentStatusReleased PaymentStatus = "released"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// PatientInfo describes the person receiving care
type PatientInfo struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Condition    string `json:"condition"`
	SpecialNeeds string `json:"special_needs"`
}

// ServicePayment holds the amounts and escrow state of a service
type ServicePayment struct {
	Amount              float64       `json:"amount"`
	CommissionFamily    float64       `json:"commission_family"`
	CommissionCaregiver float64       `json:"commission_caregiver"`
	NetAmount           float64       `json:"net_amount"`
	Status              PaymentStatus `json:"status"`
	CheckoutID          string        `json:"checkout_id,omitempty"`
	ExternalRef         string        `json:"external_ref,omitempty"`
	ReleasedAt          *time.Time    `json:"released_at,omitempty"`
}

// Service is a family's request for home care
type Service struct {
	ID            string         `json:"id"`
	FamilyID      string         `json:"family_id"`
	CaregiverID   *string        `json:"caregiver_id,omitempty"`
	ServiceType   ServiceType    `json:"service_type"`
	Patient       PatientInfo    `json:"patient"`
	Location      *Location      `json:"location,omitempty"`
	Address       string         `json:"address"`
	ScheduledDate time.Time      `json:"scheduled_date"`
	Duration      int            `json:"duration"` // hours
	Notes         string         `json:"notes,omitempty"`
	Status        ServiceStatus  `json:"status"`
	Payment       ServicePayment `json:"payment"`
	ActualStart   *time.Time     `json:"actual_start,omitempty"`
	ActualEnd     *time.Time     `json:"actual_end,omitempty"`
	CancelReason  string         `json:"cancel_reason,omitempty"`
	Version       int            `json:"version"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// IsAssignedTo reports whether caregiverID is the caregiver assigned to the service
func (s *Service) IsAssignedTo(caregiverID string) bool {
	return s.CaregiverID != nil && *s.CaregiverID == caregiverID
}

// ServiceDTO is used for database operations to flatten nested structs
type ServiceDTO struct {
	ID                  string          `db:"id"`
	FamilyID            string          `db:"family_id"`
	CaregiverID         sql.NullString  `db:"caregiver_id"`
	ServiceType         ServiceType     `db:"service_type"`
	PatientName         string          `db:"patient_name"`
	PatientAge          int             `db:"patient_age"`
	PatientCondition    string          `db:"patient_condition"`
	PatientSpecialNeeds string          `db:"patient_special_needs"`
	Latitude            sql.NullFloat64 `db:"location_lat"`
	Longitude           sql.NullFloat64 `db:"location_lng"`
	Address             string          `db:"address"`
	ScheduledDate       time.Time       `db:"scheduled_date"`
	Duration            int             `db:"duration"`
	Notes               string          `db:"notes"`
	Status              ServiceStatus   `db:"status"`
	Amount              float64         `db:"amount"`
	CommissionFamily    float64         `db:"commission_family"`
	CommissionCaregiver float64         `db:"commission_caregiver"`
	NetAmount           float64         `db:"net_amount"`
	PaymentStatus       PaymentStatus   `db:"payment_status"`
	CheckoutID          string          `db:"checkout_id"`
	ExternalPaymentRef  string          `db:"external_payment_ref"`
	ReleasedAt          sql.NullTime    `db:"released_at"`
	ActualStart         sql.NullTime    `db:"actual_start"`
	ActualEnd           sql.NullTime    `db:"actual_end"`
	CancelReason        string          `db:"cancel_reason"`
	Version             int             `db:"version"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

// ToDTO converts a Service to a ServiceDTO
func (s *Service) ToDTO() *ServiceDTO {
	dto := &ServiceDTO{
		ID:                  s.ID,
		FamilyID:            s.FamilyID,
		ServiceType:         s.ServiceType,
		PatientName:         s.Patient.Name,
		PatientAge:          s.Patient.Age,
		PatientCondition:    s.Patient.Condition,
		PatientSpecialNeeds: s.Patient.SpecialNeeds,
		Address:             s.Address,
		ScheduledDate:       s.ScheduledDate,
		Duration:            s.Duration,
		Notes:               s.Notes,
		Status:              s.Status,
		Amount:              s.Payment.Amount,
		CommissionFamily:    s.Payment.CommissionFamily,
		CommissionCaregiver: s.Payment.CommissionCaregiver,
		NetAmount:           s.Payment.NetAmount,
		PaymentStatus:       s.Payment.Status,
		CheckoutID:          s.Payment.CheckoutID,
		ExternalPaymentRef:  s.Payment.ExternalRef,
		ReleasedAt:          nullTime(s.Payment.ReleasedAt),
		ActualStart:         nullTime(s.ActualStart),
		ActualEnd:           nullTime(s.ActualEnd),
		CancelReason:        s.CancelReason,
		Version:             s.Version,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
	if s.CaregiverID != nil {
		dto.CaregiverID = sql.NullString{String: *s.CaregiverID, Valid: true}
	}
	if s.Location != nil {
		dto.Latitude = sql.NullFloat64{Float64: s.Location.Latitude, Valid: true}
		dto.Longitude = sql.NullFloat64{Float64: s.Location.Longitude, Valid: true}
	}
	return dto
}

// ToService converts a ServiceDTO to a Service
func (dto *ServiceDTO) ToService() *Service {
	s := &Service{
		ID:          dto.ID,
		FamilyID:    dto.FamilyID,
		ServiceType: dto.ServiceType,
		Patient: PatientInfo{
			Name:         dto.PatientName,
			Age:          dto.PatientAge,
			Condition:    dto.PatientCondition,
			SpecialNeeds: dto.PatientSpecialNeeds,
		},
		Address:       dto.Address,
		ScheduledDate: dto.ScheduledDate,
		Duration:      dto.Duration,
		Notes:         dto.Notes,
		Status:        dto.Status,
		Payment: ServicePayment{
			Amount:              dto.Amount,
			CommissionFamily:    dto.CommissionFamily,
			CommissionCaregiver: dto.CommissionCaregiver,
			NetAmount:           dto.NetAmount,
			Status:              dto.PaymentStatus,
			CheckoutID:          dto.CheckoutID,
			ExternalRef:         dto.ExternalPaymentRef,
			ReleasedAt:          timePtr(dto.ReleasedAt),
		},
		ActualStart:  timePtr(dto.ActualStart),
		ActualEnd:    timePtr(dto.ActualEnd),
		CancelReason: dto.CancelReason,
		Version:      dto.Version,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	}
	if dto.CaregiverID.Valid {
		id := dto.CaregiverID.String
		s.CaregiverID = &id
	}
	if dto.Latitude.Valid && dto.Longitude.Valid {
		s.Location = &Location{Latitude: dto.Latitude.Float64, Longitude: dto.Longitude.Float64}
	}
	return s
}

// CreateServiceRequest is the payload a family sends to request care
type CreateServiceRequest struct {
	ServiceType   ServiceType `json:"service_type"`
	Patient       PatientInfo `json:"patient"`
	Location      *Location   `json:"location"`
	Address       string      `json:"address"`
	ScheduledDate time.Time   `json:"scheduled_date"`
	Duration      int         `json:"duration"`
	Notes         string      `json:"notes"`
}

// UpdateServiceRequest carries the editable fields of a pending service
type UpdateServiceRequest struct {
	Patient       *PatientInfo `json:"patient,omitempty"`
	Address       *string      `json:"address,omitempty"`
	ScheduledDate *time.Time   `json:"scheduled_date,omitempty"`
	Duration      *int         `json:"duration,omitempty"`
	Notes         *string      `json:"notes,omitempty"`
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// CancelServiceRequest carries the optional reason for a cancellation
type CancelServiceRequest struct {
	Reason string `json:"reason"`
}
