package tracking

import (
	"sync"

	"github.com/BidumanADT/bellwood-admin/internal/pkg/logger"
)

// Subscriber is the send side of a realtime connection. The WebSocket
// client satisfies it; tests substitute in-memory fakes.
type Subscriber interface {
	ID() string
	Send(event string, data interface{}) error
}

// SubscriptionRegistry tracks which connections belong to which broadcast
// groups. Group membership is the only state it owns; authorization is
// decided before Join is called.
type SubscriptionRegistry struct {
	mu sync.RWMutex
	// group name -> connection id -> subscriber
	groups map[string]map[string]Subscriber
	// connection id -> set of joined group names, for disconnect cleanup
	joined map[string]map[string]bool
}

func NewSubscriptionRegistry() *SubscriptionRegistry {
	return &SubscriptionRegistry{
		groups: make(map[string]map[string]Subscriber),
		joined: make(map[string]map[string]bool),
	}
}

// Join adds the subscriber to a group. Joining a group twice is a no-op.
func (r *SubscriptionRegistry) Join(sub Subscriber, group string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.groups[group]
	if !ok {
		members = make(map[string]Subscriber)
		r.groups[group] = members
	}
	members[sub.ID()] = sub

	groups, ok := r.joined[sub.ID()]
	if !ok {
		groups = make(map[string]bool)
		r.joined[sub.ID()] = groups
	}
	groups[group] = true
}

// Leave removes the connection from a group. Leaving a group it never
// joined is a no-op, not an error.
func (r *SubscriptionRegistry) Leave(connID, group string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(connID, group)
}

// RemoveAll drops the connection from every group it joined. Called on
// disconnect.
func (r *SubscriptionRegistry) RemoveAll(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for group := range r.joined[connID] {
		r.leaveLocked(connID, group)
	}
}

func (r *SubscriptionRegistry) leaveLocked(connID, group string) {
	if members, ok := r.groups[group]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(r.groups, group)
		}
	}
	if groups, ok := r.joined[connID]; ok {
		delete(groups, group)
		if len(groups) == 0 {
			delete(r.joined, connID)
		}
	}
}

// IsMember reports whether the connection currently belongs to the group.
func (r *SubscriptionRegistry) IsMember(connID, group string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.joined[connID][group]
}

// GroupSize returns the number of connections in a group.
func (r *SubscriptionRegistry) GroupSize(group string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups[group])
}

// Broadcast sends an event to every member of a group and returns the
// number of successful deliveries. A failed send is logged and skipped;
// one slow or broken connection must not keep the event from the rest.
func (r *SubscriptionRegistry) Broadcast(group, event string, data interface{}) int {
	r.mu.RLock()
	members := make([]Subscriber, 0, len(r.groups[group]))
	for _, sub := range r.groups[group] {
		members = append(members, sub)
	}
	r.mu.RUnlock()

	delivered := 0
	for _, sub := range members {
		if err := sub.Send(event, data); err != nil {
			logger.Warn("Failed to deliver event to subscriber",
				logger.String("group", group),
				logger.String("event", event),
				logger.String("connection_id", sub.ID()),
				logger.Err(err))
			continue
		}
		delivered++
	}
	return delivered
}
