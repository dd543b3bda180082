package store

import (
	"fmt"
	"sync"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
)

const keyProfile = "quickflip_profile"

// ProfileStore хранит бизнес-профиль пользователя
type ProfileStore struct {
	mu      sync.Mutex
	bridge  storage.Bridge
	seed    bool
	inited  bool
	profile domain.Profile
}

// NewProfileStore создает новое хранилище профиля
func NewProfileStore(bridge storage.Bridge, seed bool) *ProfileStore {
	return &ProfileStore{bridge: bridge, seed: seed}
}

// Name возвращает имя хранилища
func (s *ProfileStore) Name() string { return "profile" }

// Init загружает профиль, заполняет демо-данные при первом запуске
func (s *ProfileStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.profile = storage.Load(s.bridge, keyProfile, domain.Profile{})
	if len(s.profile.Fields) == 0 && s.seed {
		s.profile = domain.Profile{
			Fields: map[string]string{
				"companyName":        "Demo Company Ltd",
				"registrationNumber": "REG123456",
				"industry":           "retail",
				"annualRevenue":      "1m-10m",
				"email":              "demo@company.com",
				"phone":              "+1234567890",
				"address":            "123 Business Ave, Commerce City, State 12345",
			},
			Approved: true,
		}
		if err := storage.Save(s.bridge, keyProfile, s.profile); err != nil {
			return fmt.Errorf("profile store: %w", err)
		}
	}

	s.inited = true
	return nil
}

// Get возвращает копию профиля
func (s *ProfileStore) Get() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.copyProfile()
}

// Update сливает изменения в профиль.
// Непустой профиль считается одобренным, пока не указано иное
func (s *ProfileStore) Update(updates map[string]string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile.Fields == nil {
		s.profile.Fields = make(map[string]string)
	}
	for key, value := range updates {
		s.profile.Fields[key] = value
	}
	if len(s.profile.Fields) > 0 {
		s.profile.Approved = true
	}

	if err := storage.Save(s.bridge, keyProfile, s.profile); err != nil {
		return domain.Result{}, fmt.Errorf("profile store: %w", err)
	}

	return domain.Result{Success: true, Message: "Profile saved successfully!"}, nil
}

func (s *ProfileStore) copyProfile() domain.Profile {
	copied := domain.Profile{Approved: s.profile.Approved}
	if s.profile.Fields != nil {
		copied.Fields = make(map[string]string, len(s.profile.Fields))
		for key, value := range s.profile.Fields {
			copied.Fields[key] = value
		}
	}

	return copied
}
