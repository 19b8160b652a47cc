// Package jsonlens holds the dataset store and its derived state: the
// discovered schema, the search cache, and the debounced query controller.
package jsonlens

import (
	"sync"
)

// operationType distinguishes read accesses from dataset replacements so
// the lockManager can pick the right lock: shared for reads, exclusive for
// the atomic swap that installs a new dataset.
type operationType int

const (
	// readOperation is any access to the current dataset snapshot.
	// Multiple reads can proceed concurrently.
	readOperation operationType = iota

	// writeOperation replaces the dataset. It is exclusive, which is what
	// makes a load atomic: no reader can observe a partially-migrated
	// dataset, schema, or search cache.
	writeOperation
)

// lockManager centralizes the store's locking strategy. Funneling every
// store operation through execute keeps lock acquisition and release in
// one place instead of scattered lock/unlock pairs.
type lockManager struct {
	mu *sync.RWMutex
}

func newLockManager() *lockManager {
	return &lockManager{mu: &sync.RWMutex{}}
}

// execute runs fn under the lock appropriate for the operation type. The
// lock is released via defer, so it is dropped even if fn panics.
func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
