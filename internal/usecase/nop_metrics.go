package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// NopMetrics is an OperationMetrics that records nothing. Used by the CLI
// and by tests that do not assert on metrics.
type NopMetrics struct{}

// NewNopMetrics creates a new NopMetrics.
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

func (*NopMetrics) ObserveDeposit(decimal.Decimal)                     {}
func (*NopMetrics) ObserveWithdrawal(decimal.Decimal, decimal.Decimal, int) {}
func (*NopMetrics) ObserveLockWait(time.Duration)                      {}
func (*NopMetrics) IncOperationError(string)                           {}
