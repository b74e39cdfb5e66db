// Package lock provides the per-account locking coordinator: an in-process
// keyed mutex guaranteeing at most one in-flight balance mutation per
// account, with a bounded wait.
package lock

import (
	"context"
	"sync"
	"time"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

// KeyedMutex implements usecase.AccountLocker. One mutex exists per key,
// created on demand and removed once no holder or waiter references it, so
// the map does not grow with the number of accounts ever seen.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
	maxWait time.Duration // zero means wait until ctx is done
}

type entry struct {
	ch   chan struct{} // capacity 1; holding the token means holding the lock
	refs int
}

// NewKeyedMutex creates a new KeyedMutex. Acquire fails with
// domain.ErrLockTimeout once maxWait elapses.
func NewKeyedMutex(maxWait time.Duration) *KeyedMutex {
	return &KeyedMutex{
		entries: make(map[string]*entry),
		maxWait: maxWait,
	}
}

// Acquire blocks until the key's lock is free, then returns a release
// function. Release is idempotent and must be called on every exit path.
func (k *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	e := k.ref(key)

	var timeout <-chan time.Time
	if k.maxWait > 0 {
		timer := time.NewTimer(k.maxWait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		k.unref(key)
		return nil, ctx.Err()
	case <-timeout:
		k.unref(key)
		return nil, domain.ErrLockTimeout
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-e.ch
			k.unref(key)
		})
	}

	return release, nil
}

func (k *KeyedMutex) ref(key string) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++

	return e
}

func (k *KeyedMutex) unref(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		return
	}

	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}
