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

const keyRepayments = "quickflip_repayments"

// RepaymentStore хранит обязательства по выплатам финансовым институтам
type RepaymentStore struct {
	mu     sync.Mutex
	bridge storage.Bridge
	seed   bool
	inited bool
	list   []domain.Repayment
}

// NewRepaymentStore создает новое хранилище выплат
func NewRepaymentStore(bridge storage.Bridge, seed bool) *RepaymentStore {
	return &RepaymentStore{bridge: bridge, seed: seed}
}

// Name возвращает имя хранилища
func (s *RepaymentStore) Name() string { return "repayments" }

// Init загружает выплаты, заполняет демо-данные при первом запуске
func (s *RepaymentStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.list = storage.Load(s.bridge, keyRepayments, []domain.Repayment(nil))
	if len(s.list) == 0 && s.seed {
		s.list = seedRepayments()
		if err := storage.Save(s.bridge, keyRepayments, s.list); err != nil {
			return fmt.Errorf("repayment store: %w", err)
		}
	}

	s.inited = true
	return nil
}

func seedRepayments() []domain.Repayment {
	return []domain.Repayment{
		{
			ID:             uuid.New().String(),
			InvoiceNumber:  "INV-2024-001",
			Institute:      "FinanceFirst",
			OriginalAmount: 5000,
			PayAmount:      4600,
			DueDate:        "2024-02-15",
			Status:         domain.RepaymentStatusPending,
		},
		{
			ID:             uuid.New().String(),
			InvoiceNumber:  "INV-2024-002",
			Institute:      "QuickPay",
			OriginalAmount: 3200,
			PayAmount:      2944,
			DueDate:        "2024-02-16",
			Status:         domain.RepaymentStatusPending,
		},
	}
}

// List возвращает все выплаты
func (s *RepaymentStore) List() []domain.Repayment {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.Repayment, len(s.list))
	copy(list, s.list)
	return list
}

// Pending возвращает невыплаченные обязательства
func (s *RepaymentStore) Pending() []domain.Repayment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []domain.Repayment
	for _, repayment := range s.list {
		if repayment.Status == domain.RepaymentStatusPending {
			pending = append(pending, repayment)
		}
	}

	return pending
}

// MarkPaid проводит оплату обязательства.
// Переход Pending -> Paid односторонний: повторная оплата отклоняется
func (s *RepaymentStore) MarkPaid(repaymentID string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID != repaymentID {
			continue
		}

		if s.list[i].Status == domain.RepaymentStatusPaid {
			return domain.Result{Success: false, Message: "Repayment already paid"}, nil
		}

		now := time.Now()
		s.list[i].Status = domain.RepaymentStatusPaid
		s.list[i].PaidAt = &now

		if err := storage.Save(s.bridge, keyRepayments, s.list); err != nil {
			return domain.Result{}, fmt.Errorf("repayment store: %w", err)
		}

		amount := strconv.FormatFloat(s.list[i].PayAmount, 'f', -1, 64)
		return domain.Result{Success: true, Message: fmt.Sprintf("Payment of $%s completed", amount)}, nil
	}

	return domain.Result{Success: false, Message: "Repayment not found"}, nil
}
