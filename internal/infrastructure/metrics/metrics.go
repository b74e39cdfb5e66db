package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds all business-level Prometheus metrics.
type Metrics struct {
	// Deposit metrics
	DepositsTotal prometheus.Counter
	DepositAmount prometheus.Histogram

	// Withdrawal metrics
	WithdrawalsTotal prometheus.Counter
	WithdrawalAmount prometheus.Histogram
	InterestCredited prometheus.Histogram
	MonthsHeld       prometheus.Histogram

	// Lock metrics
	LockWaitDuration prometheus.Histogram

	// Error metrics
	OperationErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DepositsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bank_deposits_total",
			Help: "Total number of deposits applied",
		}),
		DepositAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_deposit_amount",
			Help:    "Deposit amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		WithdrawalsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bank_withdrawals_total",
			Help: "Total number of withdrawals applied",
		}),
		WithdrawalAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_withdrawal_amount",
			Help:    "Withdrawal amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		InterestCredited: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_interest_credited",
			Help:    "Interest credited on withdrawals",
			Buckets: []float64{0.01, 1, 10, 100, 1000, 10000, 100000},
		}),
		MonthsHeld: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_withdrawal_months_held",
			Help:    "Whole months between the anchor deposit and the withdrawal",
			Buckets: []float64{0, 1, 3, 6, 12, 24, 60, 120},
		}),
		LockWaitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bank_lock_wait_duration_seconds",
			Help:    "Time spent waiting for a per-account lock",
			Buckets: prometheus.DefBuckets,
		}),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_operation_errors_total",
				Help: "Total operation errors by operation",
			},
			[]string{"operation"},
		),
	}
}

// ObserveDeposit records a completed deposit.
func (m *Metrics) ObserveDeposit(amount decimal.Decimal) {
	m.DepositsTotal.Inc()
	m.DepositAmount.Observe(amount.InexactFloat64())
}

// ObserveWithdrawal records a completed withdrawal.
func (m *Metrics) ObserveWithdrawal(amount, interest decimal.Decimal, monthsHeld int) {
	m.WithdrawalsTotal.Inc()
	m.WithdrawalAmount.Observe(amount.InexactFloat64())
	m.InterestCredited.Observe(interest.InexactFloat64())
	m.MonthsHeld.Observe(float64(monthsHeld))
}

// ObserveLockWait records time spent acquiring a per-account lock.
func (m *Metrics) ObserveLockWait(d time.Duration) {
	m.LockWaitDuration.Observe(d.Seconds())
}

// IncOperationError records a failed operation.
func (m *Metrics) IncOperationError(operation string) {
	m.OperationErrors.WithLabelValues(operation).Inc()
}
