// Package kv provides the string key-value store backing board persistence.
//
// The board engine depends only on the Store interface; export and import
// operate on whole-store snapshots, so the interface exposes key listing and
// replace-all alongside get/set.
package kv

import "sort"

// Store is a string-keyed value store.
type Store interface {
	// Keys returns all keys in the store.
	Keys() ([]string, error)

	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)

	// Set stores a value under key.
	Set(key, value string) error

	// Clear removes all entries.
	Clear() error

	// ReplaceAll atomically clears the store and repopulates it from items.
	ReplaceAll(items map[string]string) error
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	items map[string]string

	// FailSet, when set, is returned from Set to simulate write failures.
	FailSet error
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string]string)}
}

// Keys returns all keys, sorted for deterministic tests.
func (s *MemStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Get returns the value for key and whether it exists.
func (s *MemStore) Get(key string) (string, bool, error) {
	value, ok := s.items[key]
	return value, ok, nil
}

// Set stores a value under key.
func (s *MemStore) Set(key, value string) error {
	if s.FailSet != nil {
		return s.FailSet
	}
	s.items[key] = value
	return nil
}

// Clear removes all entries.
func (s *MemStore) Clear() error {
	s.items = make(map[string]string)
	return nil
}

// ReplaceAll clears the store and repopulates it from items.
func (s *MemStore) ReplaceAll(items map[string]string) error {
	replacement := make(map[string]string, len(items))
	for key, value := range items {
		replacement[key] = value
	}
	s.items = replacement
	return nil
}
