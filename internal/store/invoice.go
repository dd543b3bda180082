package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/google/uuid"
)

const keyInvoices = "quickflip_invoices"

// InvoiceStore хранит счета покупателя
type InvoiceStore struct {
	mu     sync.Mutex
	bridge storage.Bridge
	seed   bool
	inited bool
	list   []domain.Invoice
}

// NewInvoiceStore создает новое хранилище счетов
func NewInvoiceStore(bridge storage.Bridge, seed bool) *InvoiceStore {
	return &InvoiceStore{bridge: bridge, seed: seed}
}

// Name возвращает имя хранилища
func (s *InvoiceStore) Name() string { return "invoices" }

// Init загружает счета, заполняет демо-данные при первом запуске
func (s *InvoiceStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.list = storage.Load(s.bridge, keyInvoices, []domain.Invoice(nil))
	if len(s.list) == 0 && s.seed {
		s.list = seedInvoices()
		if err := storage.Save(s.bridge, keyInvoices, s.list); err != nil {
			return fmt.Errorf("invoice store: %w", err)
		}
	}

	s.inited = true
	return nil
}

func seedInvoices() []domain.Invoice {
	return []domain.Invoice{
		{ID: uuid.New().String(), Number: "INV-2024-001", Date: "2024-01-15", Seller: "ABC Corp", Amount: 5000, Status: domain.InvoiceStatusPending},
		{ID: uuid.New().String(), Number: "INV-2024-002", Date: "2024-01-16", Seller: "XYZ Ltd", Amount: 3200, Status: domain.InvoiceStatusValidated},
		{ID: uuid.New().String(), Number: "INV-2024-003", Date: "2024-01-17", Seller: "DEF Inc", Amount: 7500, Status: domain.InvoiceStatusPaid},
	}
}

// List возвращает все счета
func (s *InvoiceStore) List() []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.Invoice, len(s.list))
	copy(list, s.list)
	return list
}

// Filtered возвращает счета, прошедшие все заданные фильтры.
// Пустое поле фильтра пропускает любые значения
func (s *InvoiceStore) Filtered(filter domain.InvoiceFilter) []domain.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []domain.Invoice
	for _, invoice := range s.list {
		if filter.Number != "" && !strings.Contains(strings.ToLower(invoice.Number), strings.ToLower(filter.Number)) {
			continue
		}
		if filter.MinAmount != nil && invoice.Amount < *filter.MinAmount {
			continue
		}
		if filter.DateFrom != "" && invoice.Date < filter.DateFrom {
			continue
		}
		filtered = append(filtered, invoice)
	}

	return filtered
}

// Validate применяет результат проверки счета.
// Pending переходит в Validated или Changes Requested; повторная проверка
// уже проверенного счета допустима, оплаченный счет не проверяется
func (s *InvoiceStore) Validate(invoiceID string, approved bool, notes string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(invoiceID)
	if idx < 0 {
		return domain.Result{Success: false, Message: "Invoice not found"}, nil
	}

	if s.list[idx].Status == domain.InvoiceStatusPaid {
		return domain.Result{Success: false, Message: fmt.Sprintf("Invoice %s is already paid", s.list[idx].Number)}, nil
	}

	now := time.Now()
	outcome := "approved"
	s.list[idx].Status = domain.InvoiceStatusValidated
	if !approved {
		outcome = "marked for changes"
		s.list[idx].Status = domain.InvoiceStatusChangesRequested
	}
	s.list[idx].ValidationNotes = notes
	s.list[idx].ValidatedAt = &now

	if err := storage.Save(s.bridge, keyInvoices, s.list); err != nil {
		return domain.Result{}, fmt.Errorf("invoice store: %w", err)
	}

	return domain.Result{Success: true, Message: fmt.Sprintf("Invoice %s %s", s.list[idx].Number, outcome)}, nil
}

// DiscountOffers возвращает предложения дисконта для счета
func (s *InvoiceStore) DiscountOffers(invoiceID string) ([]domain.DiscountOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(invoiceID)
	if idx < 0 {
		return nil, domain.ErrInvoiceNotFound
	}

	amount := s.list[idx].Amount
	return []domain.DiscountOffer{
		{Institute: "FinanceFirst", DiscountPercent: 7, Amount: amount * 0.93},
		{Institute: "QuickPay", DiscountPercent: 5, Amount: amount * 0.95},
	}, nil
}

func (s *InvoiceStore) indexOf(invoiceID string) int {
	for i := range s.list {
		if s.list[i].ID == invoiceID {
			return i
		}
	}

	return -1
}
