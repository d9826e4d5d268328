package crypto

import (
	"fmt"

	"StaffPortal/internal/cli/repo"
)

// SealedStorage шифрует значения перед записью во вложенное хранилище.
// Значение, которое не удалось расшифровать, читается как ошибка, а не как пустая строка.
type SealedStorage struct {
	inner repo.Storage
	key   []byte
}

// NewSealedStorage оборачивает inner. key должен быть длиной 32 байта.
func NewSealedStorage(inner repo.Storage, key []byte) (*SealedStorage, error) {
	if len(key) != keyLen {
		return nil, ErrInvalidKey
	}
	return &SealedStorage{inner: inner, key: key}, nil
}

func (s *SealedStorage) GetItem(key string) (string, error) {
	sealed, err := s.inner.GetItem(key)
	if err != nil {
		return "", err
	}
	plain, err := Open(sealed, s.key)
	if err != nil {
		return "", fmt.Errorf("open %q: %w", key, err)
	}
	return string(plain), nil
}

func (s *SealedStorage) SetItem(key, value string) error {
	sealed, err := Seal([]byte(value), s.key)
	if err != nil {
		return err
	}
	return s.inner.SetItem(key, sealed)
}

func (s *SealedStorage) RemoveItem(key string) error {
	return s.inner.RemoveItem(key)
}
