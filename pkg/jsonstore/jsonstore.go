package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store manages JSON documents kept as individual files under a root
// directory. Every mutation rewrites the whole document: writes are staged
// to a temporary file and published with an atomic rename, so a reader never
// observes a partially written document. A per-file mutex serializes
// read-modify-write cycles on the same document; documents in different
// files never block each other.
type Store struct {
	root string

	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("store root cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root: %w", err)
	}
	return &Store{root: dir, locks: make(map[string]*sync.Mutex)}, nil
}

func (s *Store) lockFor(rel string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[rel]
	if !ok {
		l = &sync.Mutex{}
		s.locks[rel] = l
	}
	return l
}

// Load reads the document at rel into v. A missing file is reported as
// fs.ErrNotExist; callers decide whether that is an error.
func (s *Store) Load(rel string, v any) error {
	lock := s.lockFor(rel)
	lock.Lock()
	defer lock.Unlock()
	return s.loadLocked(rel, v)
}

func (s *Store) loadLocked(rel string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", rel, err)
	}
	return nil
}

// Save replaces the document at rel with v atomically.
func (s *Store) Save(rel string, v any) error {
	lock := s.lockFor(rel)
	lock.Lock()
	defer lock.Unlock()
	return s.saveLocked(rel, v)
}

func (s *Store) saveLocked(rel string, v any) error {
	full := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", rel, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), filepath.Base(full)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", rel, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close staged %s: %w", rel, err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to publish %s: %w", rel, err)
	}
	return nil
}

// Exists reports whether a document is present at rel.
func (s *Store) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(s.root, rel))
	return err == nil
}

// Update runs one read-modify-write cycle on the document at rel while
// holding its per-file lock. The callback receives the current document
// (the zero value when the file does not exist yet, with exists=false) and
// mutates it in place. When the callback returns an error nothing is
// written; otherwise the document is saved back atomically.
func Update[T any](s *Store, rel string, fn func(doc *T, exists bool) error) error {
	lock := s.lockFor(rel)
	lock.Lock()
	defer lock.Unlock()

	var doc T
	exists := true
	if err := s.loadLocked(rel, &doc); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		exists = false
	}
	if err := fn(&doc, exists); err != nil {
		return err
	}
	return s.saveLocked(rel, &doc)
}
