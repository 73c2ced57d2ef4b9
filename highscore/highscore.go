// Package highscore persists the best score across sessions.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store loads and saves a single high-score integer.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// record is the on-disk format.
type record struct {
	HighScore int `yaml:"high_score"`
}

// FileStore keeps the high score in a small YAML file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored score. A missing file reads as zero.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading high score: %w", err)
	}

	var r record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("parsing high score: %w", err)
	}
	if r.HighScore < 0 {
		return 0, fmt.Errorf("high score %d is negative", r.HighScore)
	}
	return r.HighScore, nil
}

// Save writes the score, replacing the file atomically.
func (s *FileStore) Save(score int) error {
	data, err := yaml.Marshal(record{HighScore: score})
	if err != nil {
		return fmt.Errorf("marshaling high score: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating high score dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing high score: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing high score: %w", err)
	}
	return nil
}

// MemoryStore keeps the high score in memory. Useful for headless runs and tests.
type MemoryStore struct {
	mu    sync.Mutex
	score int
	saves int
}

// NewMemoryStore returns a store holding the given initial score.
func NewMemoryStore(initial int) *MemoryStore {
	return &MemoryStore{score: initial}
}

// Load returns the held score.
func (m *MemoryStore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// Save replaces the held score.
func (m *MemoryStore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = score
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
