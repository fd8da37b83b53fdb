// Package xsync provides the mutex abstraction used by Subscriber to switch
// between synchronized and no-op locking strategies behind a single call
// shape, so that concurrency-mode selection does not change the subscriber's
// control flow.
package xsync

import "sync"

// Mutex is the minimal locking contract a Subscriber depends on.
type Mutex interface {
	Lock()
	Unlock()
	TryLock() bool
}

// NewMutexWithLock returns a Mutex backed by a real sync.Mutex.
func NewMutexWithLock() Mutex {
	return &realMutex{}
}

// NewMutexWithoutLock returns a Mutex whose Lock/Unlock/TryLock are no-ops.
// It preserves the call shape used by the synchronized path while incurring
// no synchronization cost, for callers who already guarantee non-concurrent
// access.
func NewMutexWithoutLock() Mutex {
	return noopMutex{}
}

type realMutex struct {
	mu sync.Mutex
}

func (m *realMutex) Lock()         { m.mu.Lock() }
func (m *realMutex) Unlock()       { m.mu.Unlock() }
func (m *realMutex) TryLock() bool { return m.mu.TryLock() }

type noopMutex struct{}

func (noopMutex) Lock()         {}
func (noopMutex) Unlock()       {}
func (noopMutex) TryLock() bool { return true }
