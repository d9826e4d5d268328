package repo

import "sync"

// MemoryStorage хранит значения в памяти процесса. Используется в тестах
// и при встраивании клиента, когда сохранять токен на диск не нужно.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage создаёт хранилище, опционально заполненное начальными значениями.
func NewMemoryStorage(initial map[string]string) *MemoryStorage {
	items := make(map[string]string, len(initial))
	for k, v := range initial {
		items[k] = v
	}
	return &MemoryStorage{items: items}
}

func (s *MemoryStorage) GetItem(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok || v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

func (s *MemoryStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		s.items = map[string]string{}
	}
	s.items[key] = value
	return nil
}

func (s *MemoryStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}
