package models

import "time"

// Now is the clock every persisted timestamp is taken from; always UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime renders t as RFC3339 for payloads and mail data
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
