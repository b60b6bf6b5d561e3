package mocks

import (
	"fmt"
	"sync"
)

// Workspaces implements pipeline.Workspaces without touching the filesystem.
type Workspaces struct {
	// AcquireErr and ReleaseErr, when set, are returned by the matching call.
	AcquireErr error
	ReleaseErr error

	mu       sync.Mutex
	next     int
	released map[string]bool // path -> keep
}

// NewWorkspaces creates an in-memory workspace manager.
func NewWorkspaces() *Workspaces {
	return &Workspaces{released: make(map[string]bool)}
}

// Acquire returns a fresh fake path.
func (m *Workspaces) Acquire() (string, error) {
	if m.AcquireErr != nil {
		return "", m.AcquireErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("/fake/zcall_%d", m.next), nil
}

// Release records the keep decision for path.
func (m *Workspaces) Release(path string, keep bool) error {
	m.mu.Lock()
	m.released[path] = keep
	m.mu.Unlock()
	return m.ReleaseErr
}

// Released reports whether path was released and, if so, whether it was kept.
func (m *Workspaces) Released(path string) (released, keep bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keep, released = m.released[path]
	return released, keep
}
