package gateway

import (
	"context"
	"errors"
)

var errNoNotifier = errors.New("realtime channel not configured")

// IsOnline reports whether the user has at least one open connection
func (g *MatchGW) IsOnline(userID string) bool {
	if g.notifier == nil {
		return false
	}
	return g.notifier.IsOnline(userID)
}

// PushToUser sends an event to every connection of the user
func (g *MatchGW) PushToUser(ctx context.Context, userID, event string, payload interface{}) error {
	if g.notifier == nil {
		return errNoNotifier
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.notifier.NotifyUser(userID, event, payload)
}
