package store

import (
	"fmt"
	"sync"

	"github.com/avc/quickflip-dashboard/internal/storage"
)

const keyDarkMode = "quickflip_darkMode"

// UIStore хранит пользовательские настройки интерфейса
type UIStore struct {
	mu       sync.Mutex
	bridge   storage.Bridge
	inited   bool
	darkMode bool
}

// NewUIStore создает новое хранилище настроек интерфейса
func NewUIStore(bridge storage.Bridge) *UIStore {
	return &UIStore{bridge: bridge}
}

// Name возвращает имя хранилища
func (s *UIStore) Name() string { return "ui" }

// Init загружает сохранённые настройки
func (s *UIStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.darkMode = storage.Load(s.bridge, keyDarkMode, false)
	s.inited = true
	return nil
}

// DarkMode возвращает текущее значение тёмной темы
func (s *UIStore) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.darkMode
}

// ToggleDarkMode переключает тёмную тему и возвращает новое значение
func (s *UIStore) ToggleDarkMode() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = !s.darkMode
	if err := storage.Save(s.bridge, keyDarkMode, s.darkMode); err != nil {
		return s.darkMode, fmt.Errorf("ui store: %w", err)
	}

	return s.darkMode, nil
}
