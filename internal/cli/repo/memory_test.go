package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SetGetRemove(t *testing.T) {
	s := NewMemoryStorage(nil)

	_, err := s.GetItem(TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SetItem(TokenKey, "tok"))
	v, err := s.GetItem(TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "tok", v)

	require.NoError(t, s.RemoveItem(TokenKey))
	_, err = s.GetItem(TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)

	// повторное удаление не ошибка
	assert.NoError(t, s.RemoveItem(TokenKey))
}

func TestMemoryStorage_EmptyValueIsAbsent(t *testing.T) {
	s := NewMemoryStorage(map[string]string{TokenKey: ""})
	_, err := s.GetItem(TokenKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_InitialCopied(t *testing.T) {
	initial := map[string]string{"a": "1"}
	s := NewMemoryStorage(initial)
	initial["a"] = "2"
	v, err := s.GetItem("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}
