package constants

// WebSocket event types
const (
	// Common events
	EventError     = "error"
	EventPing      = "ping"
	EventPong      = "pong"
	EventConnected = "connected"

	// Match events
	EventServiceNearby       = "new-service-nearby"
	EventCaregiverInterested = "caregiver-interested"
	EventServiceConfirmed    = "service-confirmed"
	EventServiceStarted      = "service-started"
	EventServiceCompleted    = "service-completed"
	EventServiceCancelled    = "service-cancelled"

	// Payment events
	EventPaymentReceived = "payment-received"
	EventPaymentReleased = "payment-released"

	// Chat events
	EventChatMessage = "chat-message"
	EventChatRead    = "chat-read"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorUnknownEvent  = "unknown_event"
)
