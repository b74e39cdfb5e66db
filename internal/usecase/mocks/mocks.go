package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harisblablabla/go-bank-system/internal/domain"
	"github.com/harisblablabla/go-bank-system/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc           func(ctx context.Context, account *domain.Account) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateFunc           func(ctx context.Context, account *domain.Account) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByCustomerFunc   func(ctx context.Context, customerID string, limit, offset int) ([]*domain.Account, error)
	DeleteFunc           func(ctx context.Context, id string) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*domain.Account, error) {
	if m.ListByCustomerFunc != nil {
		return m.ListByCustomerFunc(ctx, customerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.CustomerID == customerID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

// Seed inserts an account directly into the mock store.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

// Balance reads an account's balance directly from the mock store.
func (m *MockAccountRepository) Balance(id string) decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc.Balance
	}
	return decimal.Zero
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Transaction, error)
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error)
	ListFunc          func(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	LastDepositFunc   func(ctx context.Context, tx usecase.Transaction, accountID string) (*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, txn)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.AccountID == accountID {
			result = append(result, txn)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TransactionDate.After(result[j].TransactionDate)
	})
	return paginate(result, limit, offset), nil
}

func (m *MockTransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Transaction, len(m.transactions))
	copy(result, m.transactions)
	sort.Slice(result, func(i, j int) bool {
		return result[i].TransactionDate.After(result[j].TransactionDate)
	})
	return paginate(result, limit, offset), nil
}

func (m *MockTransactionRepository) LastDeposit(ctx context.Context, tx usecase.Transaction, accountID string) (*domain.Transaction, error) {
	if m.LastDepositFunc != nil {
		return m.LastDepositFunc(ctx, tx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var last *domain.Transaction
	for _, txn := range m.transactions {
		if txn.AccountID != accountID || txn.Kind != domain.KindDeposit {
			continue
		}
		if last == nil || txn.TransactionDate.After(last.TransactionDate) {
			last = txn
		}
	}
	if last == nil {
		return nil, domain.ErrTransactionNotFound
	}
	return last, nil
}

// Count returns how many transactions the mock holds for an account.
func (m *MockTransactionRepository) Count(accountID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, txn := range m.transactions {
		if txn.AccountID == accountID {
			count++
		}
	}
	return count
}

func paginate(txns []*domain.Transaction, limit, offset int) []*domain.Transaction {
	if offset >= len(txns) {
		return nil
	}
	end := offset + limit
	if end > len(txns) {
		end = len(txns)
	}
	return txns[offset:end]
}

// MockDepositoTypeRepository is a mock implementation of DepositoTypeRepository.
type MockDepositoTypeRepository struct {
	mu    sync.RWMutex
	types map[string]*domain.DepositoType

	CreateFunc  func(ctx context.Context, depositoType *domain.DepositoType) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.DepositoType, error)
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.DepositoType, error)
	UpdateFunc  func(ctx context.Context, depositoType *domain.DepositoType) error
	DeleteFunc  func(ctx context.Context, id string) error
}

func NewMockDepositoTypeRepository() *MockDepositoTypeRepository {
	return &MockDepositoTypeRepository{
		types: make(map[string]*domain.DepositoType),
	}
}

func (m *MockDepositoTypeRepository) Create(ctx context.Context, depositoType *domain.DepositoType) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, depositoType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[depositoType.ID] = depositoType
	return nil
}

func (m *MockDepositoTypeRepository) GetByID(ctx context.Context, id string) (*domain.DepositoType, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if dt, ok := m.types[id]; ok {
		return dt, nil
	}
	return nil, domain.ErrDepositoTypeNotFound
}

func (m *MockDepositoTypeRepository) List(ctx context.Context, limit, offset int) ([]*domain.DepositoType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.DepositoType
	for _, dt := range m.types {
		result = append(result, dt)
	}
	return result, nil
}

func (m *MockDepositoTypeRepository) Update(ctx context.Context, depositoType *domain.DepositoType) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, depositoType)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[depositoType.ID] = depositoType
	return nil
}

func (m *MockDepositoTypeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.types, id)
	return nil
}

// Seed inserts a deposito type directly into the mock store.
func (m *MockDepositoTypeRepository) Seed(depositoType *domain.DepositoType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[depositoType.ID] = depositoType
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	mu   sync.Mutex
	last *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = &MockTransaction{}
	return m.last, nil
}

// Last returns the most recently begun transaction.
func (m *MockTransactionManager) Last() *MockTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "id-" + time.Now().Format("150405") + "-" + string(rune('a'+m.counter%26))
}

// PassthroughRetrier runs the operation exactly once.
type PassthroughRetrier struct{}

func NewPassthroughRetrier() *PassthroughRetrier {
	return &PassthroughRetrier{}
}

func (*PassthroughRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockCache is an in-memory mock implementation of Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return "", usecase.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
