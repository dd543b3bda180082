package storage

import (
	"encoding/json"
	"fmt"
)

// Load читает значение по ключу и десериализует его из JSON.
// Отсутствующее или повреждённое значение тихо заменяется значением
// по умолчанию: доступность важнее строгости для демо-данных
func Load[T any](b Bridge, key string, def T) T {
	raw, ok := b.Read(key)
	if !ok {
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def
	}

	return value
}

// Save сериализует значение в JSON и сохраняет его под ключом
func Save[T any](b Bridge, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: failed to marshal value for key %q: %w", key, err)
	}

	if err := b.Write(key, raw); err != nil {
		return fmt.Errorf("storage: failed to write key %q: %w", key, err)
	}

	return nil
}
