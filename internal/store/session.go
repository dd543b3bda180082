package store

import (
	"fmt"
	"sync"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/avc/quickflip-dashboard/internal/storage"
)

const keySession = "quickflip_session"

// SessionStore хранит состояние аутентификации
type SessionStore struct {
	mu      sync.Mutex
	bridge  storage.Bridge
	inited  bool
	session domain.Session
}

// NewSessionStore создает новое хранилище сессии
func NewSessionStore(bridge storage.Bridge) *SessionStore {
	return &SessionStore{bridge: bridge}
}

// Name возвращает имя хранилища
func (s *SessionStore) Name() string { return "session" }

// Init загружает сохранённую сессию.
// Сессия не заполняется демо-данными: по умолчанию пользователь не вошёл
func (s *SessionStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inited {
		return nil
	}

	s.session = storage.Load(s.bridge, keySession, domain.Session{})
	s.inited = true
	return nil
}

// Current возвращает копию текущей сессии
func (s *SessionStore) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session
	if s.session.User != nil {
		user := *s.session.User
		session.User = &user
	}

	return session
}

// Establish записывает успешно вошедшего пользователя и локальный API-токен
func (s *SessionStore) Establish(user domain.User, apiToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{LoggedIn: true, User: &user, APIToken: apiToken}
	if err := storage.Save(s.bridge, keySession, s.session); err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	return nil
}

// Clear завершает сессию и удаляет сохранённое состояние
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
	if err := s.bridge.Remove(keySession); err != nil {
		return fmt.Errorf("session store: failed to clear session: %w", err)
	}

	return nil
}

// MarkIntakeDone отмечает завершение бизнес-анкеты текущим пользователем
func (s *SessionStore) MarkIntakeDone() (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return domain.Result{Success: false, Message: "Not logged in"}, nil
	}

	s.session.User.BusinessIntakeDone = true
	if err := storage.Save(s.bridge, keySession, s.session); err != nil {
		return domain.Result{}, fmt.Errorf("session store: %w", err)
	}

	return domain.Result{Success: true, Message: "Business intake completed"}, nil
}

// IsAdmin сообщает, вошёл ли пользователь с ролью администратора
func (s *SessionStore) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.User != nil && s.session.User.Role == domain.RoleAdmin
}

// IsBuyer сообщает, вошёл ли пользователь с ролью покупателя
func (s *SessionStore) IsBuyer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session.User != nil && s.session.User.Role == domain.RoleBuyer
}
