package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Поддерживаемые бэкенды локального хранилища клиента.
const (
	StorageFS     = "fs"
	StorageSQLite = "sqlite"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string        `env:"DATABASE_URI"`
	AuthSecret  string        `env:"AUTH_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL"`

	// Shared settings
	BaseURL      string `env:"BASE_URL"`
	EnableHTTPS  bool   `env:"ENABLE_HTTPS"`
	ResourcePath string `env:"RESOURCE_PATH"`

	// Client-side settings
	ServerURL      string        `env:"-"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	StorageBackend string        `env:"STORAGE_BACKEND"`
	StorageDir     string        `env:"STORAGE_DIR"`
	ClientDBPath   string        `env:"CLIENT_DB_PATH"`
	EncryptStorage bool          `env:"ENCRYPT_STORAGE"`
	Debug          bool          `env:"DEBUG"`
	Version        bool          `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни выдаваемого токена")
	// Shared flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the staffs server in host:port form")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: use https scheme for BaseURL)")
	flag.StringVar(&cfg.ResourcePath, "resource-path", cfg.ResourcePath, "base path of the staffs resource")
	// Client flags
	flag.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "HTTP request timeout (client)")
	flag.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "local storage backend: fs or sqlite (client)")
	flag.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "directory of the file storage (client)")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.BoolVar(&cfg.EncryptStorage, "encrypt", cfg.EncryptStorage, "encrypt stored token with a local AES key (client)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	// BaseURL must be "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}
	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	cfg.ResourcePath = "/" + strings.Trim(cfg.ResourcePath, "/")
	if cfg.ResourcePath == "/" {
		cfg.ResourcePath = "/api/staffs"
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	switch strings.ToLower(cfg.StorageBackend) {
	case StorageSQLite:
		cfg.StorageBackend = StorageSQLite
	default:
		cfg.StorageBackend = StorageFS
	}

	// Fill client defaults if empty
	if cfg.StorageDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.StorageDir = filepath.Join(dir, "StaffPortal")
		}
	}
	if cfg.ClientDBPath == "" && cfg.StorageDir != "" {
		cfg.ClientDBPath = filepath.Join(cfg.StorageDir, "client.sqlite")
	}
}

// ResourceURL возвращает полный URL ресурса сотрудников.
func (cfg *Config) ResourceURL() string {
	return strings.TrimRight(cfg.ServerURL, "/") + cfg.ResourcePath
}
