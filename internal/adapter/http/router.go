package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/harisblablabla/go-bank-system/internal/adapter/http/handler"
	"github.com/harisblablabla/go-bank-system/internal/adapter/http/middleware"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler     *handler.CustomerHandler
	DepositoTypeHandler *handler.DepositoTypeHandler
	AccountHandler      *handler.AccountHandler
	TransactionHandler  *handler.TransactionHandler
	HealthHandler       *handler.HealthHandler
	IdempotencyStore    usecase.IdempotencyStore
	Logger              zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/", cfg.CustomerHandler.List)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Put("/{id}", cfg.CustomerHandler.Update)
			r.Delete("/{id}", cfg.CustomerHandler.Delete)
		})

		r.Route("/deposito-types", func(r chi.Router) {
			r.Post("/", cfg.DepositoTypeHandler.Create)
			r.Get("/", cfg.DepositoTypeHandler.List)
			r.Get("/{id}", cfg.DepositoTypeHandler.Get)
			r.Put("/{id}", cfg.DepositoTypeHandler.Update)
			r.Delete("/{id}", cfg.DepositoTypeHandler.Delete)
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Put("/{id}", cfg.AccountHandler.Update)
			r.Delete("/{id}", cfg.AccountHandler.Delete)
			r.Get("/{id}/transactions", cfg.TransactionHandler.ListByAccount)
			r.Get("/{id}/verify", cfg.AccountHandler.Verify)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Post("/deposit", cfg.TransactionHandler.Deposit)
			r.Post("/withdraw", cfg.TransactionHandler.Withdraw)
			r.Get("/", cfg.TransactionHandler.List)
			r.Get("/{id}", cfg.TransactionHandler.Get)
		})
	})

	return r
}
