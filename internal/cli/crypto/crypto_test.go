package crypto

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadOrCreateKey_CreateAndReuse(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	// создаст новый ключ
	k1, err := LoadOrCreateKey(dir)
	if err != nil {
		t.Fatalf("LoadOrCreateKey create: %v", err)
	}
	if len(k1) != 32 {
		t.Fatalf("key len want 32, got %d", len(k1))
	}
	// повторное получение — тот же ключ
	k2, err := LoadOrCreateKey(dir)
	if err != nil {
		t.Fatalf("LoadOrCreateKey reuse: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("key must be stable between calls")
	}
	fi, err := os.Stat(filepath.Join(dir, KeyFileName))
	if err != nil {
		t.Fatalf("stat key: %v", err)
	}
	if runtime.GOOS != "windows" && fi.Mode().Perm()&0o077 != 0 {
		t.Fatalf("key file must not be group/world readable: %v", fi.Mode())
	}
}

func TestLoadOrCreateKey_Errors(t *testing.T) {
	if _, err := LoadOrCreateKey(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}

	// битый ключ неправильной длины
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, KeyFileName), []byte("short"), 0o600); err != nil {
		t.Fatalf("prepare key: %v", err)
	}
	if _, err := LoadOrCreateKey(dir); err != ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}

	// key.bin есть, но не читается как файл: ошибка, новый ключ не создаётся
	dirKey := t.TempDir()
	if err := os.Mkdir(filepath.Join(dirKey, KeyFileName), 0o700); err != nil {
		t.Fatalf("prepare key dir: %v", err)
	}
	if _, err := LoadOrCreateKey(dirKey); err == nil {
		t.Fatalf("expected read error when key path is unreadable")
	}
	if fi, err := os.Stat(filepath.Join(dirKey, KeyFileName)); err != nil || !fi.IsDir() {
		t.Fatalf("existing key path must be left untouched: %v", err)
	}

	// каталог — это файл
	bad := filepath.Join(t.TempDir(), "not_dir")
	if err := os.WriteFile(bad, []byte("x"), 0o600); err != nil {
		t.Fatalf("prepare tmp file: %v", err)
	}
	if _, err := LoadOrCreateKey(bad); err == nil {
		t.Fatalf("expected error when key dir is a file")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{7}, 32)
	sealed, err := Seal([]byte("header.payload.sig"), key)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains([]byte(sealed), []byte("payload")) {
		t.Fatalf("sealed value leaks plaintext")
	}
	plain, err := Open(sealed, key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(plain) != "header.payload.sig" {
		t.Fatalf("round trip mismatch: %q", plain)
	}

	// другой ключ не подходит
	other := bytes.Repeat([]byte{8}, 32)
	if _, err := Open(sealed, other); err == nil {
		t.Fatalf("expected auth failure with wrong key")
	}
}

func TestSealOpen_InvalidInput(t *testing.T) {
	if _, err := Seal([]byte("data"), []byte("short")); err != ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey in Seal, got %v", err)
	}
	key := bytes.Repeat([]byte{1}, 32)
	if _, err := Open("%%%", key); err != ErrInvalidSealed {
		t.Fatalf("expected ErrInvalidSealed for bad base64, got %v", err)
	}
	if _, err := Open("AAAA", key); err != ErrInvalidSealed {
		t.Fatalf("expected ErrInvalidSealed for short value, got %v", err)
	}
}
