package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"engagedeck/modules/platform/logger"
)

// DefaultStateFileName is the state file name used when no explicit
// data path is configured.
const DefaultStateFileName = "state.json"

// Store reads and writes the persisted state record. There is no
// locking or transactional isolation: two concurrent invocations race
// and the later writer wins.
type Store struct {
	path string
}

// NewStore creates a store for the given state file path. An empty
// path resolves to ~/.engagedeck/state.json (falling back to the
// current directory when the home directory is unknown).
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultStatePath()
	}
	return &Store{path: path}
}

// DefaultStatePath returns the default state file location.
func DefaultStatePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultStateFileName
	}
	return filepath.Join(homeDir, ".engagedeck", DefaultStateFileName)
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. A missing file or a syntactically invalid
// one is not an error: the store resets to the canned sample record and
// returns that, logging the recovery as informational.
func (s *Store) Load(now time.Time) (*State, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s.Reset(now)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		logger.Info("state file %s is not valid JSON, restoring sample data", s.path)
		return s.Reset(now)
	}
	return &st, nil
}

// Save writes the full state record back to disk, creating the parent
// directory if needed. Last write wins.
func (s *Store) Save(st *State) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Reset replaces the state file with the canned sample record and
// returns it.
func (s *Store) Reset(now time.Time) (*State, error) {
	st := Sample(now)
	if err := s.Save(st); err != nil {
		return nil, err
	}
	return st, nil
}
