// Package presence tracks which users currently hold a realtime connection.
// State is process-local and starts empty, so every user is offline until they reconnect.
package presence

import "sync"

// Registry maps users to their live connection ids
type Registry interface {
	Register(userID, connID string)
	Unregister(connID string)
	IsOnline(userID string) bool
	Connections(userID string) []string
	OnlineCount() int
}

// MemoryRegistry is the in-process Registry implementation
type MemoryRegistry struct {
	mu     sync.RWMutex
	byUser map[string]map[string]struct{}
	byConn map[string]string
}

// NewMemoryRegistry creates an empty registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		byUser: make(map[string]map[string]struct{}),
		byConn: make(map[string]string),
	}
}

// Register attaches connID to userID. Re-registering a connection moves it to the new user.
func (r *MemoryRegistry) Register(userID, connID string) {
	if userID == "" || connID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byConn[connID]; ok && prev != userID {
		r.removeLocked(prev, connID)
	}

	conns, ok := r.byUser[userID]
	if !ok {
		conns = make(map[string]struct{})
		r.byUser[userID] = conns
	}
	conns[connID] = struct{}{}
	r.byConn[connID] = userID
}

// Unregister drops connID; the user goes offline when their last connection closes
func (r *MemoryRegistry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byConn[connID]
	if !ok {
		return
	}
	r.removeLocked(userID, connID)
}

func (r *MemoryRegistry) removeLocked(userID, connID string) {
	delete(r.byConn, connID)
	if conns, ok := r.byUser[userID]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(r.byUser, userID)
		}
	}
}

// IsOnline reports whether the user has at least one live connection
func (r *MemoryRegistry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

// Connections returns the live connection ids of a user
func (r *MemoryRegistry) Connections(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.byUser[userID]
	out := make([]string, 0, len(conns))
	for id := range conns {
		out = append(out, id)
	}
	return out
}

// OnlineCount returns the number of users with a live connection
func (r *MemoryRegistry) OnlineCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser)
}
