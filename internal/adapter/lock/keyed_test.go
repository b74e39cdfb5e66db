package lock

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/harisblablabla/go-bank-system/internal/domain"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	k := NewKeyedMutex(0)
	ctx := context.Background()

	const goroutines = 50

	var (
		wg      sync.WaitGroup
		counter int
	)

	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()

			release, err := k.Acquire(ctx, "acc-1")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			defer release()

			// Unsynchronized increment; only the mutex protects it.
			counter++
		}()
	}

	wg.Wait()

	if counter != goroutines {
		t.Errorf("counter = %d, want %d", counter, goroutines)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	k := NewKeyedMutex(100 * time.Millisecond)
	ctx := context.Background()

	releaseA, err := k.Acquire(ctx, "acc-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer releaseA()

	// acc-a being held must not block acc-b.
	releaseB, err := k.Acquire(ctx, "acc-b")
	if err != nil {
		t.Fatalf("acquiring a different key blocked: %v", err)
	}
	releaseB()
}

func TestKeyedMutexTimeout(t *testing.T) {
	k := NewKeyedMutex(50 * time.Millisecond)
	ctx := context.Background()

	release, err := k.Acquire(ctx, "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer release()

	_, err = k.Acquire(ctx, "acc-1")
	if !errors.Is(err, domain.ErrLockTimeout) {
		t.Errorf("got %v, want ErrLockTimeout", err)
	}
}

func TestKeyedMutexContextCancelled(t *testing.T) {
	k := NewKeyedMutex(0)

	release, err := k.Acquire(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = k.Acquire(ctx, "acc-1")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want context.DeadlineExceeded", err)
	}
}

func TestKeyedMutexReleaseIdempotent(t *testing.T) {
	k := NewKeyedMutex(0)
	ctx := context.Background()

	release, err := k.Acquire(ctx, "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	release()
	release() // double release must not unlock someone else's hold

	releaseNext, err := k.Acquire(ctx, "acc-1")
	if err != nil {
		t.Fatalf("reacquire failed: %v", err)
	}
	defer releaseNext()
}

func TestKeyedMutexCleansUpEntries(t *testing.T) {
	k := NewKeyedMutex(0)
	ctx := context.Background()

	for i := range 100 {
		release, err := k.Acquire(ctx, string(rune('a'+i%26)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		release()
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.entries) != 0 {
		t.Errorf("expected no retained entries, got %d", len(k.entries))
	}
}
