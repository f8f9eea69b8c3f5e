// Package concurrency provides keyed locks for serializing work per player.
package concurrency

import (
	"slices"
	"sync"
)

// LockManager hands out one mutex per key. Locks outlive any cache entry for
// the same key, so a session evicted and reloaded still shares its lock.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	if lock, ok := lm.locks.Load(key); ok {
		return lock.(*sync.Mutex)
	}
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the mutex for key and returns its unlock func
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// LockAll acquires the mutexes for every distinct key in sorted order, so two
// callers locking the same pair in opposite argument order cannot deadlock.
// The returned func releases them in reverse.
func (lm *LockManager) LockAll(keys ...string) func() {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, k := range sorted {
		mu := lm.GetLock(k)
		mu.Lock()
		held = append(held, mu)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
