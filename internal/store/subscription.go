package store

import (
	"fmt"
	"sync"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
)

const (
	keyPlans        = "quickflip_plans"
	keyCurrentPlan  = "quickflip_currentPlan"
	keySelectedPlan = "quickflip_selectedPlan"
)

// SubscriptionStore хранит каталог тарифных планов и текущую подписку.
// Текущий план всегда ссылается на план из каталога
type SubscriptionStore struct {
	mu       sync.Mutex
	bridge   storage.Bridge
	seed     bool
	inited   bool
	plans    []domain.Plan
	current  *domain.Plan
	selected *domain.Plan
}

// NewSubscriptionStore создает новое хранилище подписки
func NewSubscriptionStore(bridge storage.Bridge, seed bool) *SubscriptionStore {
	return &SubscriptionStore{bridge: bridge, seed: seed}
}

// Name возвращает имя хранилища
func (s *SubscriptionStore) Name() string { return "subscription" }

// Init загружает каталог и подписку, заполняет демо-каталог при первом
// запуске и назначает первый план текущим, если подписка отсутствует
func (s *SubscriptionStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.plans = storage.Load(s.bridge, keyPlans, []domain.Plan(nil))
	if len(s.plans) == 0 && s.seed {
		s.plans = seedPlans()
		if err := storage.Save(s.bridge, keyPlans, s.plans); err != nil {
			return fmt.Errorf("subscription store: %w", err)
		}
	}

	s.current = storage.Load(s.bridge, keyCurrentPlan, (*domain.Plan)(nil))
	s.selected = storage.Load(s.bridge, keySelectedPlan, (*domain.Plan)(nil))

	if s.current == nil && s.seed && len(s.plans) > 0 {
		plan := s.plans[0]
		s.current = &plan
		if err := storage.Save(s.bridge, keyCurrentPlan, s.current); err != nil {
			return fmt.Errorf("subscription store: %w", err)
		}
	}

	s.inited = true
	return nil
}

func seedPlans() []domain.Plan {
	return []domain.Plan{
		{
			ID:          1,
			Name:        "Monthly Plan",
			Description: "Perfect for small businesses with monthly invoice processing",
			Price:       49,
			Interval:    "month",
			Features:    []string{"Up to 50 invoices/month", "Basic analytics", "Email support", "5% discount rate"},
		},
		{
			ID:          2,
			Name:        "Yearly Plan",
			Description: "Best value for growing businesses with annual commitment",
			Price:       490,
			Interval:    "year",
			Features:    []string{"Unlimited invoices", "Advanced analytics", "Priority support", "8% discount rate", "2 months free"},
		},
	}
}

// Plans возвращает каталог тарифных планов
func (s *SubscriptionStore) Plans() []domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := make([]domain.Plan, len(s.plans))
	copy(plans, s.plans)
	return plans
}

// CurrentPlan возвращает текущий план подписки, если он есть
func (s *SubscriptionStore) CurrentPlan() *domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyPlan(s.current)
}

// SelectedPlan возвращает выбранный, но ещё не оформленный план
func (s *SubscriptionStore) SelectedPlan() *domain.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyPlan(s.selected)
}

// SelectPlan отмечает план каталога как выбранный
func (s *SubscriptionStore) SelectPlan(planID int64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan := s.findPlan(planID)
	if plan == nil {
		return domain.Result{Success: false, Message: "Plan not found"}, nil
	}

	s.selected = plan
	if err := storage.Save(s.bridge, keySelectedPlan, s.selected); err != nil {
		return domain.Result{}, fmt.Errorf("subscription store: %w", err)
	}

	return domain.Result{Success: true, Message: fmt.Sprintf("Selected %s", plan.Name)}, nil
}

// Subscribe оформляет подписку на выбранный план
func (s *SubscriptionStore) Subscribe() (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return domain.Result{Success: false, Message: "No plan selected"}, nil
	}

	name := s.selected.Name
	s.current = s.selected
	s.selected = nil

	if err := storage.Save(s.bridge, keyCurrentPlan, s.current); err != nil {
		return domain.Result{}, fmt.Errorf("subscription store: %w", err)
	}
	if err := s.bridge.Remove(keySelectedPlan); err != nil {
		return domain.Result{}, fmt.Errorf("subscription store: failed to clear selected plan: %w", err)
	}

	return domain.Result{Success: true, Message: fmt.Sprintf("Successfully subscribed to %s!", name)}, nil
}

// UpgradePlan переводит подписку на другой план каталога
func (s *SubscriptionStore) UpgradePlan(planID int64) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan := s.findPlan(planID)
	if plan == nil {
		return domain.Result{Success: false, Message: "Plan not found"}, nil
	}

	action := "upgraded"
	if s.current != nil && plan.Price <= s.current.Price {
		action = "downgraded"
	}

	s.current = plan
	if err := storage.Save(s.bridge, keyCurrentPlan, s.current); err != nil {
		return domain.Result{}, fmt.Errorf("subscription store: %w", err)
	}

	return domain.Result{Success: true, Message: fmt.Sprintf("Successfully %s to %s!", action, plan.Name)}, nil
}

// CancelSubscription отменяет текущую подписку
func (s *SubscriptionStore) CancelSubscription() (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.bridge.Remove(keyCurrentPlan); err != nil {
		return domain.Result{}, fmt.Errorf("subscription store: failed to cancel subscription: %w", err)
	}

	return domain.Result{Success: true, Message: "Subscription cancelled successfully"}, nil
}

// findPlan возвращает копию плана каталога по идентификатору
func (s *SubscriptionStore) findPlan(planID int64) *domain.Plan {
	for _, plan := range s.plans {
		if plan.ID == planID {
			copied := plan
			return &copied
		}
	}

	return nil
}

func copyPlan(plan *domain.Plan) *domain.Plan {
	if plan == nil {
		return nil
	}

	copied := *plan
	return &copied
}
