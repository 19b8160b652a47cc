package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// VisibilityStore is the external collaborator that persists which
// columns are visible. The core schema, query, and viewport components
// never read or write it; callers resolve the visible-column list first
// and hand that to the session.
type VisibilityStore interface {
	// Load returns the persisted visible-column set. A store with no
	// saved state returns (nil, nil), meaning "everything visible".
	Load() ([]string, error)

	// Save persists the visible-column set, replacing any previous one.
	Save(columns []string) error
}

// Constants for cross-process file locking.
const (
	lockTimeout    = 3 * time.Second
	lockRetryDelay = 100 * time.Millisecond
)

// FileVisibilityStore persists the visible-column set as a YAML file. A
// separate lock file guards concurrent access from other processes, and
// writes go through a temp file plus rename so readers never observe a
// torn file.
type FileVisibilityStore struct {
	path     string
	fileLock *flock.Flock
}

// visibilityFile is the on-disk YAML shape.
type visibilityFile struct {
	Columns []string `yaml:"columns"`
}

// NewFileVisibilityStore creates a store backed by the given path. The
// file is created on first Save.
func NewFileVisibilityStore(path string) *FileVisibilityStore {
	return &FileVisibilityStore{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// Load reads the persisted visible-column set.
func (s *FileVisibilityStore) Load() ([]string, error) {
	if err := s.acquireLock(); err != nil {
		return nil, err
	}
	defer func() { _ = s.fileLock.Unlock() }()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read column visibility: %w", err)
	}

	var file visibilityFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse column visibility: %w", err)
	}
	return file.Columns, nil
}

// Save writes the visible-column set, replacing any previous one.
func (s *FileVisibilityStore) Save(columns []string) error {
	if err := s.acquireLock(); err != nil {
		return err
	}
	defer func() { _ = s.fileLock.Unlock() }()

	raw, err := yaml.Marshal(visibilityFile{Columns: columns})
	if err != nil {
		return fmt.Errorf("encode column visibility: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace visibility file: %w", err)
	}
	return nil
}

func (s *FileVisibilityStore) acquireLock() error {
	// The lock file sits next to the store file, so its directory must
	// exist before the first lock attempt.
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create visibility directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock within %s", lockTimeout)
	}
	return nil
}
