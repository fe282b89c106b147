package planio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/eyal-weiss/laddersearch/searchengine"
)

// Save writes plan as a JSON Record into m's directory, tagged with a
// fresh run identifier and this Manager's next sequence number. The
// returned Record's RunID and Sequence identify the written file.
func (m *Manager) Save(plan searchengine.Plan, cost int, status searchengine.Status) (Record, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return Record{}, err
	}

	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.mu.Unlock()

	ops := make([]string, len(plan))
	for i, id := range plan {
		ops[i] = string(id)
	}

	rec := Record{
		RunID:     uuid.New().String(),
		Sequence:  seq,
		Operators: ops,
		Cost:      cost,
		Status:    status.String(),
		SavedAt:   time.Now(),
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Record{}, err
	}

	path := filepath.Join(m.dir, fmt.Sprintf("%s.json", rec.RunID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Record{}, err
	}
	return rec, nil
}
