package game

import (
	"encoding/json"

	"github.com/ekazakov/tiersort/internal/models"
)

// Snapshot serializes the entire engine state. The engine has no I/O of
// its own; callers decide where snapshots live (sessions table, file,
// test fixture).
func (e *Engine) Snapshot() ([]byte, error) {
	return json.Marshal(e)
}

// Restore rebuilds an engine from a snapshot produced by Snapshot.
func Restore(data []byte) (*Engine, error) {
	var e Engine
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	if e.Categorized == nil {
		e.Categorized = models.CategorizedPlayers{}
	}
	return &e, nil
}
