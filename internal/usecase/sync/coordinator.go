package sync

import (
	"errors"
	"sync"
	"time"
)

// ErrAlreadyRunning rejects a trigger while a run is active. Triggers are
// never queued.
var ErrAlreadyRunning = errors.New("synchronization already in progress")

// State is a snapshot of the coordinator, safe to hand to callers.
type State struct {
	Running   bool
	StartedAt time.Time
}

// Coordinator serializes orchestration runs within this process: at most one
// run at a time, concurrent triggers fail fast. The guarantee is
// process-local; multi-instance deployments need an external lease on top.
type Coordinator struct {
	mu        sync.Mutex
	running   bool
	startedAt time.Time
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// TryBegin claims the run slot or fails with ErrAlreadyRunning.
func (c *Coordinator) TryBegin(now time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrAlreadyRunning
	}
	c.running = true
	c.startedAt = now
	return nil
}

// End releases the run slot. Calling End without a matching TryBegin is a
// no-op.
func (c *Coordinator) End() {
	c.mu.Lock()
	c.running = false
	c.startedAt = time.Time{}
	c.mu.Unlock()
}

func (c *Coordinator) Status() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Running: c.running, StartedAt: c.startedAt}
}
