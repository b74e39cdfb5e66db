package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type idempotencyStoreStub struct {
	checkFn  func(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error)
	updateFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error

	updated map[string][]byte
}

func newIdempotencyStoreStub() *idempotencyStoreStub {
	s := &idempotencyStoreStub{updated: make(map[string][]byte)}
	s.checkFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error) {
		return false, nil, nil
	}
	s.updateFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
		s.updated[key] = value
		return nil
	}
	return s
}

func (s *idempotencyStoreStub) CheckAndSet(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error) {
	return s.checkFn(ctx, key, value, ttl)
}

func (s *idempotencyStoreStub) Update(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.updateFn(ctx, key, value, ttl)
}

func okHandler(body string, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func TestIdempotency_FirstRequestStoresResponse(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/deposit", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	mw.Wrap(okHandler(`{"id":"txn-1"}`, http.StatusCreated)).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if string(store.updated["key-1"]) != `{"id":"txn-1"}` {
		t.Fatalf("stored response = %q", store.updated["key-1"])
	}
}

func TestIdempotency_ReplayReturnsCachedResponse(t *testing.T) {
	store := newIdempotencyStoreStub()
	store.checkFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error) {
		return true, []byte(`{"id":"txn-1"}`), nil
	}
	mw := NewIdempotencyMiddleware(store)

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/deposit", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	mw.Wrap(next).ServeHTTP(rec, req)

	if handlerCalled {
		t.Fatal("replayed request must not reach the handler")
	}
	if rec.Header().Get("X-Idempotency-Replay") != "true" {
		t.Fatal("expected replay header")
	}
	if rec.Body.String() != `{"id":"txn-1"}` {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestIdempotency_FailedResponseNotCached(t *testing.T) {
	store := newIdempotencyStoreStub()
	mw := NewIdempotencyMiddleware(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/withdraw", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	mw.Wrap(okHandler(`{"error":"insufficient balance"}`, http.StatusUnprocessableEntity)).ServeHTTP(rec, req)

	if len(store.updated) != 0 {
		t.Fatalf("failed response must not be cached, got %v", store.updated)
	}
}

func TestIdempotency_StoreErrorFailsRequest(t *testing.T) {
	store := newIdempotencyStoreStub()
	store.checkFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error) {
		return false, nil, errors.New("redis down")
	}
	mw := NewIdempotencyMiddleware(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/deposit", strings.NewReader("{}"))
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	rec := httptest.NewRecorder()

	mw.Wrap(okHandler("{}", http.StatusCreated)).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestIdempotency_SkipsGetAndKeylessRequests(t *testing.T) {
	store := newIdempotencyStoreStub()
	checked := false
	store.checkFn = func(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error) {
		checked = true
		return false, nil, nil
	}
	mw := NewIdempotencyMiddleware(store)

	get := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	get.Header.Set(IdempotencyKeyHeader, "key-1")
	mw.Wrap(okHandler("[]", http.StatusOK)).ServeHTTP(httptest.NewRecorder(), get)

	post := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/deposit", strings.NewReader("{}"))
	mw.Wrap(okHandler("{}", http.StatusCreated)).ServeHTTP(httptest.NewRecorder(), post)

	if checked {
		t.Fatal("store must not be consulted for GETs or keyless requests")
	}
}
