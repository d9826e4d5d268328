package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"StaffPortal/internal/cli/repo"
)

// AppDirName имя каталога клиента внутри пользовательского конфиг-каталога.
const AppDirName = "StaffPortal"

// FSStore — файловое хранилище клиента: один файл на ключ.
// Пустой Dir означает каталог по умолчанию (os.UserConfigDir()/StaffPortal).
type FSStore struct {
	Dir string
}

var _ repo.Storage = FSStore{}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// DefaultDir возвращает каталог клиента по умолчанию.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDirName), nil
}

func (s FSStore) dir() (string, error) {
	p := s.Dir
	if p == "" {
		d, err := DefaultDir()
		if err != nil {
			return "", err
		}
		p = d
	}
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s FSStore) path(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("invalid storage key: %q", key)
	}
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, key), nil
}

// GetItem читает значение ключа из файла. Отсутствующий или пустой файл — ErrNotFound.
func (s FSStore) GetItem(key string) (string, error) {
	p, err := s.path(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", repo.ErrNotFound
	}
	return string(b), nil
}

// SetItem сохраняет значение ключа в файл с правами 0600.
func (s FSStore) SetItem(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// RemoveItem удаляет файл ключа.
func (s FSStore) RemoveItem(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
