package draft

import (
	"sync"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
)

// Editor mirrors the in-progress authoring state between explicit saves.
// The autosave timer snapshots it on each tick.
type Editor struct {
	mu      sync.RWMutex
	current *models.Draft
}

// NewEditor creates an empty editor state
func NewEditor() *Editor {
	return &Editor{}
}

// Set replaces the current editor state
func (e *Editor) Set(d *models.Draft) {
	e.mu.Lock()
	defer e.mu.Unlock()
	snapshot := *d
	e.current = &snapshot
}

// Snapshot returns a copy of the current state, or nil when nothing has
// been written yet
func (e *Editor) Snapshot() *models.Draft {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.current == nil {
		return nil
	}
	snapshot := *e.current
	return &snapshot
}

// Reset clears the editor state, used after a successful publish
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.current = nil
}
