// Package logstream fans live deployment log lines out to followers.
package logstream

import (
	"sync"

	"skylift/internal/model"
)

// subscriber buffer; slow followers drop lines rather than stall the
// pipeline.
const subscriberBuffer = 256

// Hub routes published log lines to the subscribers of each deployment.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan model.LogLine]struct{} // deploymentID -> subscribers
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: map[string]map[chan model.LogLine]struct{}{}}
}

// Subscribe registers a follower for a deployment's live lines. The
// returned cancel func unregisters and closes the channel.
func (h *Hub) Subscribe(deploymentID string) (<-chan model.LogLine, func()) {
	ch := make(chan model.LogLine, subscriberBuffer)

	h.mu.Lock()
	if h.subs[deploymentID] == nil {
		h.subs[deploymentID] = map[chan model.LogLine]struct{}{}
	}
	h.subs[deploymentID][ch] = struct{}{}
	h.mu.Unlock()

	// Close may have already torn the subscriber down; only close the
	// channel if this cancel is the one removing it.
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			set := h.subs[deploymentID]
			_, present := set[ch]
			if present {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, deploymentID)
				}
			}
			h.mu.Unlock()
			if present {
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Publish delivers a line to every follower of its deployment. Full
// follower buffers are skipped.
func (h *Hub) Publish(line model.LogLine) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[line.DeploymentID] {
		select {
		case ch <- line:
		default:
		}
	}
}

// Close drops all followers of a deployment, closing their channels.
// Called when the deployment reaches a terminal state.
func (h *Hub) Close(deploymentID string) {
	h.mu.Lock()
	set := h.subs[deploymentID]
	delete(h.subs, deploymentID)
	h.mu.Unlock()

	for ch := range set {
		close(ch)
	}
}

// Followers reports the current follower count of a deployment.
func (h *Hub) Followers(deploymentID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[deploymentID])
}
