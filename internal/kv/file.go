package kv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileStore is a Store persisted as a single JSON object in a directory.
// All access is serialized through file locking so concurrent processes
// don't interleave read-modify-write cycles.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// storePath returns the path to the store file.
func (s *FileStore) storePath() string {
	return filepath.Join(s.dir, "store.json")
}

// lockPath returns the path to the lock file.
func (s *FileStore) lockPath() string {
	return filepath.Join(s.dir, "store.lock")
}

// Keys returns all keys in the store.
func (s *FileStore) Keys() ([]string, error) {
	items, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	return keys, nil
}

// Get returns the value for key and whether it exists.
func (s *FileStore) Get(key string) (string, bool, error) {
	items, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := items[key]
	return value, ok, nil
}

// Set stores a value under key.
func (s *FileStore) Set(key, value string) error {
	return s.update(func(items map[string]string) {
		items[key] = value
	})
}

// Clear removes all entries.
func (s *FileStore) Clear() error {
	return s.update(func(items map[string]string) {
		for key := range items {
			delete(items, key)
		}
	})
}

// ReplaceAll clears the store and repopulates it from items in one write.
func (s *FileStore) ReplaceAll(replacement map[string]string) error {
	return s.update(func(items map[string]string) {
		for key := range items {
			delete(items, key)
		}
		for key, value := range replacement {
			items[key] = value
		}
	})
}

// load reads the store from disk. Returns an empty map if the file doesn't
// exist.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.storePath())
	if os.IsNotExist(err) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var items map[string]string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal store: %w", err)
	}
	if items == nil {
		items = make(map[string]string)
	}
	return items, nil
}

// save writes the store to disk atomically, skipping the write when the
// content is unchanged.
func (s *FileStore) save(items map[string]string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if existing, err := os.ReadFile(s.storePath()); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read store file: %w", err)
	}

	// Write atomically via temp file
	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(s.storePath())+".tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := os.Rename(name, s.storePath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename store file: %w", err)
	}

	return nil
}

// update atomically reads, modifies, and writes the store with file locking.
func (s *FileStore) update(fn func(items map[string]string)) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	items, err := s.load()
	if err != nil {
		return err
	}

	fn(items)

	return s.save(items)
}
