package constants

// User roles carried in JWT claims
const (
	RoleFamily    = "family"
	RoleCaregiver = "caregiver"
	RoleAdmin     = "admin"
)
