package models

// Actor is the authenticated caller of an operation
type Actor struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the caller has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}
