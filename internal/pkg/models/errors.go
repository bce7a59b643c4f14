package models

import (
	"errors"
	"fmt"
)

// Base error kinds. Specific errors below wrap one of them so callers can match
// either the precise precondition or the kind with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("concurrent update conflict")
)

var (
	ErrServiceNotFound      = fmt.Errorf("service %w", ErrNotFound)
	ErrCaregiverNotFound    = fmt.Errorf("caregiver %w", ErrNotFound)
	ErrFamilyNotFound       = fmt.Errorf("family %w", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("notification %w", ErrNotFound)

	ErrServiceNotPending    = fmt.Errorf("%w: service is not pending", ErrInvalidState)
	ErrServiceNotMatched    = fmt.Errorf("%w: service is not matched", ErrInvalidState)
	ErrServiceNotAccepted   = fmt.Errorf("%w: service is not accepted", ErrInvalidState)
	ErrServiceNotInProgress = fmt.Errorf("%w: service is not in progress", ErrInvalidState)
	ErrServiceNotCompleted  = fmt.Errorf("%w: service is not completed", ErrInvalidState)
	ErrServiceClosed        = fmt.Errorf("%w: service no longer accepts responses", ErrInvalidState)
	ErrAlreadyResponded     = fmt.Errorf("%w: offer already accepted", ErrInvalidState)
	ErrPaymentNotHeld       = fmt.Errorf("%w: payment is not held", ErrInvalidState)
	ErrAlreadyReviewed      = fmt.Errorf("%w: service already reviewed", ErrInvalidState)

	ErrNotYourService = fmt.Errorf("%w: service does not belong to this family", ErrForbidden)
	ErrNotAssigned    = fmt.Errorf("%w: caregiver is not assigned to this service", ErrForbidden)

	ErrNotACandidate      = fmt.Errorf("%w: caregiver was not offered this service", ErrValidation)
	ErrInvalidLocation    = fmt.Errorf("%w: invalid location coordinates", ErrValidation)
	ErrInvalidServiceType = fmt.Errorf("%w: invalid service type", ErrValidation)
)
