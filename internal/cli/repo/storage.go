package repo

import "errors"

// ErrNotFound возвращается хранилищем, когда по ключу ничего не сохранено.
var ErrNotFound = errors.New("storage: item not found")

// TokenKey ключ, под которым клиент хранит auth-токен.
const TokenKey = "token"

// Storage описывает синхронное key-value хранилище клиента.
type Storage interface {
	// GetItem возвращает значение по ключу или ErrNotFound.
	GetItem(key string) (string, error)
	// SetItem сохраняет значение по ключу, перезаписывая предыдущее.
	SetItem(key, value string) error
	// RemoveItem удаляет ключ. Отсутствие ключа ошибкой не считается.
	RemoveItem(key string) error
}
