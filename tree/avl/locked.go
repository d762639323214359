package avl

import (
	"sync"
)

// Locked is a Tree that is safe for concurrent use.
// Readers share a lock and writers hold it exclusively, so
// no reader ever sees a tree in the middle of a rotation.
type Locked[K any] struct {
	mu sync.RWMutex
	t  *Tree[K]
}

// NewLocked takes ownership of t. t must not be used directly
// afterwards.
func NewLocked[K any](t *Tree[K]) *Locked[K] {
	if t == nil {
		panic("avl: NewLocked on nil Tree")
	}

	return &Locked[K]{
		t: t,
	}
}

// Insert inserts k under the write lock.
func (l *Locked[K]) Insert(k K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.t.Insert(k)
}

// Remove removes one key equal to k under the write lock.
// It returns false if there was no such key.
func (l *Locked[K]) Remove(k K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.t.Remove(k)
}

// Clear removes every key under the write lock.
func (l *Locked[K]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.t.Clear()
}

// Contains reports whether k is in the tree.
func (l *Locked[K]) Contains(k K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Contains(k)
}

// Len returns the number of keys in the tree.
func (l *Locked[K]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Len()
}

// Height returns the height of the tree, -1 if it is empty.
func (l *Locked[K]) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Height()
}

// Keys returns a snapshot of the keys in ascending order.
func (l *Locked[K]) Keys() []K {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Keys()
}

// Min returns the smallest key, or false if the tree is empty.
func (l *Locked[K]) Min() (K, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Min()
}

// Max returns the largest key, or false if the tree is empty.
func (l *Locked[K]) Max() (K, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.t.Max()
}

// Update runs f with exclusive access to the tree, for batches of
// changes that must appear atomic to readers.
// f must not keep t after it returns.
func (l *Locked[K]) Update(f func(t *Tree[K])) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f(l.t)
}

// View runs f with shared access to the tree. f must not modify t.
func (l *Locked[K]) View(f func(t *Tree[K])) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	f(l.t)
}
