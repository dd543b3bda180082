package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/google/uuid"
)

const (
	keyStats    = "quickflip_stats"
	keyActivity = "quickflip_activity"

	maxActivityEntries    = 20
	recentActivityEntries = 5
)

// DashboardStore хранит показатели дашборда, график платежей
// и ленту последних действий
type DashboardStore struct {
	mu       sync.Mutex
	bridge   storage.Bridge
	seed     bool
	inited   bool
	stats    domain.Stats
	chart    []domain.ChartPoint
	activity []domain.Activity
}

// NewDashboardStore создает новое хранилище дашборда
func NewDashboardStore(bridge storage.Bridge, seed bool) *DashboardStore {
	return &DashboardStore{bridge: bridge, seed: seed}
}

// Name возвращает имя хранилища
func (s *DashboardStore) Name() string { return "dashboard" }

// Init загружает показатели и ленту действий, заполняет демо-данные
// при первом запуске. График не сохраняется: он формируется при старте
func (s *DashboardStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.stats = storage.Load(s.bridge, keyStats, domain.Stats{})
	if s.stats == (domain.Stats{}) && s.seed {
		s.stats = domain.Stats{
			InvoicesReceived: 24,
			InvoicesSettled:  18,
			AmountPaid:       45750,
			AmountPending:    12300,
		}
		if err := storage.Save(s.bridge, keyStats, s.stats); err != nil {
			return fmt.Errorf("dashboard store: %w", err)
		}
	}

	s.activity = storage.Load(s.bridge, keyActivity, []domain.Activity(nil))

	s.chart = []domain.ChartPoint{
		{Month: "Jan", Amount: 1000},
		{Month: "Feb", Amount: 1500},
		{Month: "Mar", Amount: 1200},
		{Month: "Apr", Amount: 2000},
		{Month: "May", Amount: 2500},
		{Month: "Jun", Amount: 2200},
		{Month: "Jul", Amount: 3000},
	}

	s.inited = true
	return nil
}

// Stats возвращает текущие показатели дашборда
func (s *DashboardStore) Stats() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stats
}

// UpdateStats заменяет показатели дашборда.
// Отрицательные значения отклоняются без изменения состояния
func (s *DashboardStore) UpdateStats(stats domain.Stats) (domain.Result, error) {
	if stats.InvoicesReceived < 0 || stats.InvoicesSettled < 0 ||
		stats.AmountPaid < 0 || stats.AmountPending < 0 {
		return domain.Result{Success: false, Message: "Stats values must not be negative"}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = stats
	if err := storage.Save(s.bridge, keyStats, s.stats); err != nil {
		return domain.Result{}, fmt.Errorf("dashboard store: %w", err)
	}

	return domain.Result{Success: true, Message: "Stats updated"}, nil
}

// ChartData возвращает точки графика платежей в хронологическом порядке
func (s *DashboardStore) ChartData() []domain.ChartPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	chart := make([]domain.ChartPoint, len(s.chart))
	copy(chart, s.chart)
	return chart
}

// RecentActivity возвращает последние записи ленты действий, новые первыми
func (s *DashboardStore) RecentActivity() []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.activity)
	if n > recentActivityEntries {
		n = recentActivityEntries
	}

	recent := make([]domain.Activity, n)
	copy(recent, s.activity[:n])
	return recent
}

// AddActivity добавляет запись в начало ленты действий.
// Лента усекается до последних записей
func (s *DashboardStore) AddActivity(kind, message string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.Activity{
		ID:        uuid.New().String(),
		Kind:      kind,
		Message:   message,
		Timestamp: time.Now(),
	}

	s.activity = append([]domain.Activity{entry}, s.activity...)
	if len(s.activity) > maxActivityEntries {
		s.activity = s.activity[:maxActivityEntries]
	}

	if err := storage.Save(s.bridge, keyActivity, s.activity); err != nil {
		return domain.Result{}, fmt.Errorf("dashboard store: %w", err)
	}

	return domain.Result{Success: true, Message: "Activity recorded"}, nil
}
