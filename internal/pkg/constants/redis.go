package constants

// KeyServiceNotified marks that a caregiver was offered a service: match:notified:{service_id}:{caregiver_id}
const KeyServiceNotified = "match:notified:%s:%s"
