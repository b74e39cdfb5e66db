package redis

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestIdempotencyStoreFirstRequest(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("expected first request to claim the key")
	}
}

func TestIdempotencyStoreReplayReturnsStoredResponse(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	response := []byte(`{"id":"txn-1"}`)

	if _, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Update(ctx, "key-1", response, time.Minute); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	exists, stored, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected replay to find the key")
	}
	if !bytes.Equal(stored, response) {
		t.Fatalf("stored = %s, want %s", stored, response)
	}
}

func TestIdempotencyStoreInFlightPlaceholder(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second caller sees the in-flight placeholder.
	exists, stored, err := store.CheckAndSet(ctx, "key-1", nil, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected second request to observe the claim")
	}
	if string(stored) != "processing" {
		t.Fatalf("stored = %s, want processing", stored)
	}
}
