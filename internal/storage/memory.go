package storage

import "sync"

// MemoryBridge реализует Bridge в памяти процесса.
// Используется в тестах и при запуске без файла хранилища
type MemoryBridge struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBridge создает пустое хранилище в памяти
func NewMemoryBridge() *MemoryBridge {
	return &MemoryBridge{values: make(map[string][]byte)}
}

// Read возвращает сохранённое значение по ключу
func (b *MemoryBridge) Read(key string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.values[key]
	if !ok {
		return nil, false
	}

	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true
}

// Write сохраняет значение под ключом
func (b *MemoryBridge) Write(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	b.values[key] = copied
	return nil
}

// Remove удаляет значение по ключу
func (b *MemoryBridge) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.values, key)
	return nil
}

// Close освобождает хранилище
func (b *MemoryBridge) Close() error {
	return nil
}
