package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// SQLiteBridge реализует Bridge поверх встроенной базы SQLite.
// Замена localStorage браузера: один файл, одна таблица ключ-значение
type SQLiteBridge struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite открывает файл хранилища и создает схему при необходимости
func OpenSQLite(path string, logger *zap.Logger) (*SQLiteBridge, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open sqlite at %q: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: failed to ping sqlite at %q: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: failed to create schema: %w", err)
	}

	return &SQLiteBridge{db: db, logger: logger}, nil
}

// Read возвращает сохранённое значение по ключу.
// Любая ошибка чтения логируется и деградирует до отсутствия значения
func (b *SQLiteBridge) Read(key string) ([]byte, bool) {
	var value string
	err := b.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			b.logger.Warn("failed to read state key", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	return []byte(value), true
}

// Write сохраняет значение под ключом (upsert)
func (b *SQLiteBridge) Write(key string, value []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("storage: failed to write key %q: %w", key, err)
	}

	return nil
}

// Remove удаляет значение по ключу
func (b *SQLiteBridge) Remove(key string) error {
	if _, err := b.db.Exec(`DELETE FROM app_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("storage: failed to remove key %q: %w", key, err)
	}

	return nil
}

// Close закрывает соединение с базой
func (b *SQLiteBridge) Close() error {
	return b.db.Close()
}
