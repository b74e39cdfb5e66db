package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/harisblablabla/go-bank-system/internal/adapter/http"
	"github.com/harisblablabla/go-bank-system/internal/adapter/http/handler"
	"github.com/harisblablabla/go-bank-system/internal/adapter/lock"
	postgresRepo "github.com/harisblablabla/go-bank-system/internal/adapter/repository/postgres"
	redisRepo "github.com/harisblablabla/go-bank-system/internal/adapter/repository/redis"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/config"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/logger"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/metrics"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/postgres"
	"github.com/harisblablabla/go-bank-system/internal/infrastructure/redis"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	customerRepo := postgresRepo.NewCustomerRepository(pool)
	depositoTypeRepo := postgresRepo.NewDepositoTypeRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	cachedDepositoTypeRepo := redisRepo.NewDepositoTypeCache(
		depositoTypeRepo, cache, cfg.DepositoTypeCacheTTL, appLogger)

	locker := lock.NewKeyedMutex(cfg.LockWaitTimeout)
	operationMetrics := metrics.New()

	// Initialize use cases
	customerUC := usecase.NewCustomerUseCase(customerRepo, idGen)
	depositoTypeUC := usecase.NewDepositoTypeUseCase(cachedDepositoTypeRepo, idGen)
	accountUC := usecase.NewAccountUseCase(accountRepo, customerRepo, cachedDepositoTypeRepo, idGen, retrier)
	transactionUC := usecase.NewTransactionUseCase(
		txManager, accountRepo, transactionRepo, cachedDepositoTypeRepo,
		locker, idGen, retrier, operationMetrics, appLogger)
	ledgerUC := usecase.NewLedgerUseCase(accountRepo, transactionRepo)

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerUC)
	depositoTypeHandler := handler.NewDepositoTypeHandler(depositoTypeUC)
	accountHandler := handler.NewAccountHandler(accountUC, ledgerUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CustomerHandler:     customerHandler,
		DepositoTypeHandler: depositoTypeHandler,
		AccountHandler:      accountHandler,
		TransactionHandler:  transactionHandler,
		HealthHandler:       healthHandler,
		IdempotencyStore:    idempotencyStore,
		Logger:              appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
