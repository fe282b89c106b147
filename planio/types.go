package planio

import (
	"sync"
	"time"
)

// Record is the JSON document written for one saved plan.
type Record struct {
	RunID     string    `json:"run_id"`
	Sequence  int       `json:"sequence"`
	Operators []string  `json:"operators"`
	Cost      int       `json:"cost"`
	Status    string    `json:"status"`
	SavedAt   time.Time `json:"saved_at"`
}

// Manager writes Plans to a directory as JSON Records, one file per
// Save call.
type Manager struct {
	dir string

	mu  sync.Mutex // guards seq
	seq int
}

// NewManager returns a Manager that writes into dir. dir is not created
// by NewManager; Save creates it on first use if missing.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}
