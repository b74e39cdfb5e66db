package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for one atomic
	// deposit or withdrawal, including storage I/O. Bounds how long the
	// account row lock can be held.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultLockWaitTimeout is how long a caller waits for an account's
	// keyed mutex before failing with domain.ErrLockTimeout.
	DefaultLockWaitTimeout = 5 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
