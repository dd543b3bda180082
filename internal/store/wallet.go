package store

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/google/uuid"
)

// Кошелёк сохраняется под тремя независимыми ключами:
// баланс, признак KYC и история операций
const (
	keyWalletBalance = "quickflip_walletBalance"
	keyKYCCompleted  = "quickflip_kycCompleted"
	keyTransactions  = "quickflip_transactions"
)

const seedWalletBalance = 5240

// WalletStore хранит состояние кошелька.
// Баланс никогда не опускается ниже нуля, каждая мутация добавляет
// ровно одну операцию в начало истории
type WalletStore struct {
	mu           sync.Mutex
	bridge       storage.Bridge
	seed         bool
	inited       bool
	balance      float64
	kycCompleted bool
	transactions []domain.WalletTransaction
}

// NewWalletStore создает новое хранилище кошелька
func NewWalletStore(bridge storage.Bridge, seed bool) *WalletStore {
	return &WalletStore{bridge: bridge, seed: seed}
}

// Name возвращает имя хранилища
func (s *WalletStore) Name() string { return "wallet" }

// Init загружает кошелёк, заполняет демо-баланс при первом запуске
func (s *WalletStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	if _, ok := s.bridge.Read(keyWalletBalance); !ok && s.seed {
		if err := storage.Save(s.bridge, keyWalletBalance, float64(seedWalletBalance)); err != nil {
			return fmt.Errorf("wallet store: %w", err)
		}
	}

	s.balance = storage.Load(s.bridge, keyWalletBalance, float64(0))
	s.kycCompleted = storage.Load(s.bridge, keyKYCCompleted, false)
	s.transactions = storage.Load(s.bridge, keyTransactions, []domain.WalletTransaction(nil))

	s.inited = true
	return nil
}

// Balance возвращает текущий баланс
func (s *WalletStore) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balance
}

// KYCCompleted сообщает, пройдена ли проверка KYC
func (s *WalletStore) KYCCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.kycCompleted
}

// Transactions возвращает историю операций, новые первыми
func (s *WalletStore) Transactions() []domain.WalletTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := make([]domain.WalletTransaction, len(s.transactions))
	copy(transactions, s.transactions)
	return transactions
}

// AddMoney безусловно пополняет кошелёк
func (s *WalletStore) AddMoney(amount float64, method string) (domain.Result, error) {
	if amount <= 0 {
		return domain.Result{Success: false, Message: "Invalid amount"}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balance += amount
	s.prependTransaction(domain.TransactionTypeDeposit, amount, method)

	if err := s.persist(); err != nil {
		return domain.Result{}, err
	}

	return domain.Result{Success: true, Message: fmt.Sprintf("Successfully added $%s to wallet!", formatAmount(amount))}, nil
}

// Withdraw списывает средства с кошелька.
// Превышение баланса отклоняется без изменения состояния
func (s *WalletStore) Withdraw(amount float64, method string) (domain.Result, error) {
	if amount <= 0 {
		return domain.Result{Success: false, Message: "Invalid amount"}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if amount > s.balance {
		return domain.Result{Success: false, Message: "Insufficient balance"}, nil
	}

	s.balance -= amount
	s.prependTransaction(domain.TransactionTypeWithdrawal, amount, method)

	if err := s.persist(); err != nil {
		return domain.Result{}, err
	}

	return domain.Result{Success: true, Message: fmt.Sprintf("Successfully withdrew $%s from wallet!", formatAmount(amount))}, nil
}

// CompleteKYC отмечает проверку KYC пройденной
func (s *WalletStore) CompleteKYC() (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kycCompleted = true
	if err := storage.Save(s.bridge, keyKYCCompleted, s.kycCompleted); err != nil {
		return domain.Result{}, fmt.Errorf("wallet store: %w", err)
	}

	return domain.Result{Success: true, Message: "KYC verification completed successfully!"}, nil
}

func (s *WalletStore) prependTransaction(txType domain.TransactionType, amount float64, method string) {
	transaction := domain.WalletTransaction{
		ID:     uuid.New().String(),
		Type:   txType,
		Amount: amount,
		Method: method,
		Status: domain.TransactionStatusCompleted,
		Date:   time.Now(),
	}
	s.transactions = append([]domain.WalletTransaction{transaction}, s.transactions...)
}

func (s *WalletStore) persist() error {
	if err := storage.Save(s.bridge, keyWalletBalance, s.balance); err != nil {
		return fmt.Errorf("wallet store: %w", err)
	}
	if err := storage.Save(s.bridge, keyTransactions, s.transactions); err != nil {
		return fmt.Errorf("wallet store: %w", err)
	}

	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
