package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/google/uuid"
)

const keyNotifications = "quickflip_notifications"

// NotificationStore хранит уведомления пользователя, новые первыми
type NotificationStore struct {
	mu     sync.Mutex
	bridge storage.Bridge
	seed   bool
	inited bool
	list   []domain.Notification
}

// NewNotificationStore создает новое хранилище уведомлений
func NewNotificationStore(bridge storage.Bridge, seed bool) *NotificationStore {
	return &NotificationStore{bridge: bridge, seed: seed}
}

// Name возвращает имя хранилища
func (s *NotificationStore) Name() string { return "notifications" }

// Init загружает уведомления, заполняет демо-данные при первом запуске
func (s *NotificationStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.list = storage.Load(s.bridge, keyNotifications, []domain.Notification(nil))
	if len(s.list) == 0 && s.seed {
		s.list = seedNotifications(time.Now())
		if err := storage.Save(s.bridge, keyNotifications, s.list); err != nil {
			return fmt.Errorf("notification store: %w", err)
		}
	}

	s.inited = true
	return nil
}

func seedNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{
			ID:        uuid.New().String(),
			Title:     "New Invoice Received",
			Message:   "ABC Corp sent invoice INV-2024-004 for $2,500",
			CreatedAt: now.Add(-2 * time.Hour),
			Kind:      "invoice",
		},
		{
			ID:        uuid.New().String(),
			Title:     "Discount Offer Available",
			Message:   "FinanceFirst offers 7% discount on invoice INV-2024-003",
			CreatedAt: now.Add(-4 * time.Hour),
			Kind:      "discount",
		},
		{
			ID:        uuid.New().String(),
			Title:     "Payment Processed",
			Message:   "Your payment of $1,200 has been successfully processed",
			CreatedAt: now.Add(-24 * time.Hour),
			Kind:      "payment",
		},
		{
			ID:        uuid.New().String(),
			Title:     "Profile Updated",
			Message:   "Your business profile has been successfully updated",
			CreatedAt: now.Add(-48 * time.Hour),
			Read:      true,
			Kind:      "profile",
		},
		{
			ID:        uuid.New().String(),
			Title:     "KYC Verification Complete",
			Message:   "Your KYC verification has been approved",
			CreatedAt: now.Add(-72 * time.Hour),
			Read:      true,
			Kind:      "kyc",
		},
	}
}

// List возвращает все уведомления, новые первыми
func (s *NotificationStore) List() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.Notification, len(s.list))
	copy(list, s.list)
	return list
}

// UnreadCount возвращает число непрочитанных уведомлений
func (s *NotificationStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.list {
		if !n.Read {
			count++
		}
	}

	return count
}

// Add добавляет непрочитанное уведомление в начало списка
func (s *NotificationStore) Add(title, message, kind string) (domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification := domain.Notification{
		ID:        uuid.New().String(),
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
		Kind:      kind,
	}

	s.list = append([]domain.Notification{notification}, s.list...)
	if err := storage.Save(s.bridge, keyNotifications, s.list); err != nil {
		return domain.Notification{}, fmt.Errorf("notification store: %w", err)
	}

	return notification, nil
}

// MarkRead отмечает уведомление прочитанным
func (s *NotificationStore) MarkRead(notificationID string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID != notificationID {
			continue
		}

		s.list[i].Read = true
		if err := storage.Save(s.bridge, keyNotifications, s.list); err != nil {
			return domain.Result{}, fmt.Errorf("notification store: %w", err)
		}

		return domain.Result{Success: true, Message: "Notification marked as read"}, nil
	}

	return domain.Result{Success: false, Message: "Notification not found"}, nil
}

// MarkAllRead отмечает все уведомления прочитанными
func (s *NotificationStore) MarkAllRead() (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		s.list[i].Read = true
	}

	if err := storage.Save(s.bridge, keyNotifications, s.list); err != nil {
		return domain.Result{}, fmt.Errorf("notification store: %w", err)
	}

	return domain.Result{Success: true, Message: "All notifications marked as read"}, nil
}
