package concurrency

import (
	"sync"
)

// LockManager hands out named in-process locks. Locks are created lazily and
// never released; the key space here is small and fixed (background refill
// guards), so unbounded growth is not a concern.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Callers that must not queue behind a running holder can use TryLock.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
