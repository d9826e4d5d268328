package sqlite

import (
	"database/sql"
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"time"

	"StaffPortal/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// Встроенная SQL-миграция клиентского key-value хранилища.
//
//go:embed migrations/001_kv.sql
var kvDDL string

// KVStore — key-value хранилище клиента поверх локальной БД SQLite.
type KVStore struct {
	db *sql.DB
}

var _ repo.Storage = (*KVStore)(nil)

// Open открывает (и создаёт при необходимости) файл БД по указанному пути.
func Open(path string) (*KVStore, error) {
	if path == "" {
		return nil, errors.New("empty sqlite path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// одно соединение: для :memory: каждое новое соединение — новая пустая БД
	db.SetMaxOpenConns(1)
	return &KVStore{db: db}, nil
}

// Migrate гарантирует наличие таблицы kv.
func (s *KVStore) Migrate() error {
	_, err := s.db.Exec(kvDDL)
	return err
}

// Close закрывает соединение с БД.
func (s *KVStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// GetItem возвращает значение ключа или repo.ErrNotFound.
func (s *KVStore) GetItem(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	if v == "" {
		return "", repo.ErrNotFound
	}
	return v, nil
}

// SetItem сохраняет значение (upsert).
func (s *KVStore) SetItem(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

// RemoveItem удаляет ключ; отсутствие ключа не ошибка.
func (s *KVStore) RemoveItem(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
