package store

import (
	"fmt"

	"github.com/avc/quickflip-dashboard/internal/domain"
)

// Registry хранит единственный живой экземпляр каждого хранилища.
// Любое чтение после мутации наблюдает новое состояние, потому что
// копий экземпляров не существует
type Registry struct {
	order  []string
	stores map[string]domain.Store
}

// NewRegistry создает пустой реестр
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]domain.Store)}
}

// Register добавляет хранилище в реестр.
// Порядок регистрации определяет порядок инициализации:
// сессия первой, затем UI, затем доменные хранилища
func (r *Registry) Register(s domain.Store) {
	name := s.Name()
	if _, exists := r.stores[name]; !exists {
		r.order = append(r.order, name)
	}
	r.stores[name] = s
}

// Get возвращает хранилище по имени.
// Отсутствующее имя считается ошибкой программирования
func (r *Registry) Get(name string) (domain.Store, error) {
	s, ok := r.stores[name]
	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", name, domain.ErrStoreNotRegistered)
	}

	return s, nil
}

// InitAll инициализирует все хранилища в порядке регистрации.
// Повторный вызов безопасен: Init каждого хранилища идемпотентен
func (r *Registry) InitAll() error {
	for _, name := range r.order {
		if err := r.stores[name].Init(); err != nil {
			return fmt.Errorf("registry: failed to init store %q: %w", name, err)
		}
	}

	return nil
}
