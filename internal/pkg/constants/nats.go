package constants

// NATS Subjects
const (
	// Match Service
	SubjectServiceNearby       = "match.service.nearby"
	SubjectCaregiverInterested = "match.caregiver.interested"
	SubjectServiceConfirmed    = "match.service.confirmed"
	SubjectServiceStarted      = "match.service.started"
	SubjectServiceCompleted    = "match.service.completed"
	SubjectServiceCancelled    = "match.service.cancelled"

	// Payment Service
	SubjectPaymentReceived = "payment.received"
	SubjectPaymentReleased = "payment.released"
)
