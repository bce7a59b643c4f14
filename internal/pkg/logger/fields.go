package logger

import "go.uber.org/zap"

// Field is a structured log field; callers never import zap directly
type Field = zap.Field

// Field constructors
var (
	String   = zap.String
	Int      = zap.Int
	Float64  = zap.Float64
	Bool     = zap.Bool
	Any      = zap.Any
	Duration = zap.Duration
)

// Err attaches err under the "error" key
func Err(err error) Field {
	return zap.Error(err)
}

// Domain identifiers, so every log line uses the same keys.

func ServiceID(id string) Field   { return zap.String("service_id", id) }
func CaregiverID(id string) Field { return zap.String("caregiver_id", id) }
func FamilyID(id string) Field    { return zap.String("family_id", id) }
func UserID(id string) Field      { return zap.String("user_id", id) }
