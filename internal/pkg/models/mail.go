package models

// Mail templates understood by the mail consumer
const (
	MailServiceNearby       = "service-nearby"
	MailCaregiverInterested = "caregiver-interested"
	MailCaregiverSelected   = "caregiver-selected"
	MailPaymentReceived     = "payment-received"
	MailPaymentReleased     = "payment-released"
	MailChatMessage         = "chat-message"
)

// MailJob is a queued transactional email
type MailJob struct {
	Template string            `json:"template"`
	To       string            `json:"to"`
	Name     string            `json:"name"`
	Data     map[string]string `json:"data"`
}

// RenderedMail is a mail ready to hand to the provider
type RenderedMail struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}
