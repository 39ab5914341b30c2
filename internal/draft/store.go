// Package draft persists a single slot of in-progress authoring state.
// The slot lives in local storage as one JSON file; every save overwrites
// it and a successful publish clears it.
package draft

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Felicite37/Phase-Two-Capstone-Project/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// slotName is the single key the draft lives under
const slotName = "current-draft.json"

// Status is the caller-facing result of a slot operation. Failures never
// escape the store as errors; they surface as a status instead.
type Status string

const (
	StatusSaved   Status = "Draft saved"
	StatusCleared Status = "Draft cleared"
	StatusFailed  Status = "Failed to save draft"
)

// Store holds the single local draft slot
type Store struct {
	dir string
	log zerolog.Logger
}

// NewStore creates a draft store rooted at dir
func NewStore(dir string, log zerolog.Logger) *Store {
	return &Store{
		dir: dir,
		log: log.With().Str("component", "draft_store").Logger(),
	}
}

// Save serializes the draft into the slot, overwriting whatever was
// there. ID and LastSaved are regenerated on every save.
func (s *Store) Save(d *models.Draft) Status {
	snapshot := *d
	snapshot.ID = fmt.Sprintf("draft-%s", uuid.New().String()[:8])
	snapshot.LastSaved = time.Now().UTC()
	if snapshot.Tags == nil {
		snapshot.Tags = []string{}
	}

	raw, err := json.Marshal(&snapshot)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to serialize draft")
		return StatusFailed
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.log.Error().Err(err).Msg("Failed to create draft directory")
		return StatusFailed
	}
	if err := os.WriteFile(s.path(), raw, 0644); err != nil {
		s.log.Error().Err(err).Msg("Failed to write draft slot")
		return StatusFailed
	}
	return StatusSaved
}

// Load deserializes the slot. An empty or unreadable slot degrades to a
// draft of defaults; Load never fails.
func (s *Store) Load() *models.Draft {
	d := &models.Draft{Tags: []string{}}

	raw, err := os.ReadFile(s.path())
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("Failed to read draft slot")
		}
		return d
	}
	if err := json.Unmarshal(raw, d); err != nil {
		s.log.Warn().Err(err).Msg("Failed to decode draft slot")
		return &models.Draft{Tags: []string{}}
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	return d
}

// Clear removes the slot. Invoked only after a confirmed successful
// publish.
func (s *Store) Clear() Status {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		s.log.Error().Err(err).Msg("Failed to clear draft slot")
		return StatusFailed
	}
	return StatusCleared
}

func (s *Store) path() string {
	return filepath.Join(s.dir, slotName)
}
