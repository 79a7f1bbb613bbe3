package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists the pet record as a single pretty-printed JSON file,
// so users can inspect and hand-edit it if they really want to.
type Store struct {
	path string
}

// DefaultStatePath returns the well-known pet record location.
func DefaultStatePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".gitbuddy", "pet.json"), nil
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the pet record. A missing file returns (nil, nil): that is
// first run, not an error. A record that fails to parse or migrate is
// treated the same way rather than crashing the pet.
func (s *Store) Load() (*PetState, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state: %w", err)
	}

	var p PetState
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, nil
	}
	if !migrate(&p) {
		return nil, nil
	}
	p.SessionActions = map[string]bool{}
	return &p, nil
}

// migrate upgrades older records to the current schema in place.
// It returns false when the record is from an unknown future version.
func migrate(p *PetState) bool {
	switch p.SchemaVersion {
	case CurrentSchemaVersion:
		return true
	case 0:
		// Pre-versioned records: fill fields that did not exist yet.
		p.SchemaVersion = CurrentSchemaVersion
		if p.HP <= 0 {
			p.HP = 100
		}
		if p.Level <= 0 {
			p.Level = 1
		}
		if p.Achievements == nil {
			p.Achievements = []string{}
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now()
		}
		return true
	default:
		return false
	}
}

// Save writes the record atomically via a temp file rename. Output is
// deterministic two-space-indented JSON.
func (s *Store) Save(p *PetState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

// Reset deletes the persisted record. It reports whether a record
// existed to delete.
func (s *Store) Reset() (bool, error) {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reset state: %w", err)
	}
	return true, nil
}
