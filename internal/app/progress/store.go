// Package progress owns the persisted user-progress record.
// The store reads and writes a single JSON document through the key-value
// persistence boundary. Loading never fails: corrupt or missing data falls
// back to defaults so a bad record can never brick the tracker.
package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ecotrack-app/ecotrack/internal/domain"
)

// StateKey is the fixed key the progress record lives under.
const StateKey = "user_progress"

// SchemaVersion is stamped into every saved record.
const SchemaVersion = "1.0.0"

// KV is the persistence boundary: a key-value store holding the one
// progress record. Satisfied by *sqlite.DB.
type KV interface {
	GetState(key string) (string, error)
	SetState(key, value string) error
}

// Store loads and saves the UserProgress record.
type Store struct {
	kv KV
}

// NewStore creates a progress store over the given key-value boundary.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted record. On absent, unreadable, or malformed data
// it returns a fully-defaulted record — this operation cannot fail from the
// caller's perspective. A present record is merged field by field over the
// defaults: a persisted field wins only when it is present and well-typed.
func (s *Store) Load() domain.UserProgress {
	raw, err := s.kv.GetState(StateKey)
	if err != nil {
		log.Printf("[store] read progress: %v (using defaults)", err)
		return domain.DefaultProgress()
	}
	if raw == "" {
		return domain.DefaultProgress()
	}

	p, err := mergeDefaults([]byte(raw))
	if err != nil {
		log.Printf("[store] malformed progress record: %v (using defaults)", err)
		return domain.DefaultProgress()
	}
	return p
}

// Save serializes the record, stamping the current timestamp and schema
// version, and writes it back. A write failure is surfaced to the caller;
// the in-memory record passed in is never modified beyond the stamps, so
// it stays authoritative regardless.
func (s *Store) Save(p *domain.UserProgress) error {
	p.LastSaved = time.Now().Format(time.RFC3339)
	p.Version = SchemaVersion

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", domain.ErrPersistenceWrite, err)
	}
	if err := s.kv.SetState(StateKey, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceWrite, err)
	}
	return nil
}

// mergeDefaults reconciles a persisted JSON record with the default record.
// Unknown fields are ignored; a field of the wrong type keeps its default.
// Only a record that is not a JSON object at all counts as malformed.
func mergeDefaults(raw []byte) (domain.UserProgress, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.DefaultProgress(), err
	}

	p := domain.DefaultProgress()
	mergeField(fields, "completedHabits", &p.CompletedPracticeIDs)
	mergeField(fields, "streakDays", &p.StreakDays)
	mergeField(fields, "totalCO2Reduced", &p.TotalCO2Reduced)
	mergeField(fields, "evaluationScore", &p.EvaluationScore)
	mergeField(fields, "achievements", &p.Achievements)
	mergeField(fields, "totalEngagementPoints", &p.TotalEngagementPoints)
	mergeField(fields, "completedEvaluations", &p.CompletedEvaluations)
	mergeField(fields, "lastActiveDate", &p.LastActiveDate)
	mergeField(fields, "lastSaved", &p.LastSaved)
	mergeField(fields, "version", &p.Version)

	if p.StreakDays < 0 {
		p.StreakDays = 0
	}
	if p.CompletedEvaluations < 0 {
		p.CompletedEvaluations = 0
	}
	if p.CompletedPracticeIDs == nil {
		p.CompletedPracticeIDs = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []domain.AchievementID{}
	}
	return p, nil
}

// mergeField overwrites *dst with the persisted value when the field is
// present and decodes as the expected type.
func mergeField[T any](fields map[string]json.RawMessage, key string, dst *T) {
	rawVal, ok := fields[key]
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal(rawVal, &v); err != nil {
		log.Printf("[store] field %q has unexpected type, keeping default", key)
		return
	}
	*dst = v
}
