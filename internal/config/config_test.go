package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "AUTH_SECRET", "TOKEN_TTL", "BASE_URL", "ENABLE_HTTPS",
		"RESOURCE_PATH", "REQUEST_TIMEOUT", "STORAGE_BACKEND", "STORAGE_DIR", "CLIENT_DB_PATH", "ENCRYPT_STORAGE", "DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL default expected 24h, got %v", cfg.TokenTTL)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
	if cfg.ResourcePath != "/api/staffs" {
		t.Fatalf("ResourcePath default expected '/api/staffs', got %q", cfg.ResourcePath)
	}
	if cfg.ResourceURL() != "http://localhost:8081/api/staffs" {
		t.Fatalf("unexpected ResourceURL %q", cfg.ResourceURL())
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("RequestTimeout default expected 15s, got %v", cfg.RequestTimeout)
	}
	if cfg.StorageBackend != StorageFS {
		t.Fatalf("StorageBackend default expected fs, got %q", cfg.StorageBackend)
	}
	if cfg.StorageDir == "" || cfg.ClientDBPath == "" {
		t.Fatalf("client defaults must be non-empty: StorageDir=%q, ClientDBPath=%q", cfg.StorageDir, cfg.ClientDBPath)
	}
	if filepath.Dir(cfg.ClientDBPath) != cfg.StorageDir {
		t.Fatalf("client DB must live in storage dir, got %q", cfg.ClientDBPath)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("RESOURCE_PATH", "v2/staffs/")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("STORAGE_DIR", "/tmp/sp")
	t.Setenv("ENCRYPT_STORAGE", "true")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("TokenTTL expected 1h, got %v", cfg.TokenTTL)
	}
	if cfg.ResourcePath != "/v2/staffs" {
		t.Fatalf("ResourcePath must be normalized, got %q", cfg.ResourcePath)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("RequestTimeout expected 3s, got %v", cfg.RequestTimeout)
	}
	if cfg.StorageBackend != StorageSQLite {
		t.Fatalf("StorageBackend expected sqlite, got %q", cfg.StorageBackend)
	}
	if cfg.ClientDBPath != filepath.Join("/tmp/sp", "client.sqlite") {
		t.Fatalf("ClientDBPath expected under STORAGE_DIR, got %q", cfg.ClientDBPath)
	}
	if !cfg.EncryptStorage {
		t.Fatalf("EncryptStorage expected from env")
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	clearEnv(t)
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestNewConfig_UnknownStorageFallsBackToFS(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_BACKEND", "redis")
	resetFlagSet(t)
	cfg := NewConfig()
	if cfg.StorageBackend != StorageFS {
		t.Fatalf("expected fs fallback, got %q", cfg.StorageBackend)
	}
}
